package mapper

import (
	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}
	return &entity.Order{
		Id:                   o.Id,
		UserId:               o.UserId,
		GroupId:              o.GroupId,
		Method:               entity.PaymentMethod(o.Method),
		Purpose:              entity.OrderPurpose(o.Purpose),
		AmountCents:          o.AmountCents,
		Status:               entity.OrderStatus(o.Status),
		GatewayTransactionId: o.GatewayTransactionId,
		SnapToken:            o.SnapToken,
		QRCodeURL:            o.QRCodeURL,
		PaidAt:               o.PaidAt,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}
	return &model.Order{
		Id:                   o.Id,
		UserId:               o.UserId,
		GroupId:              o.GroupId,
		Method:               string(o.Method),
		Purpose:              string(o.Purpose),
		AmountCents:          o.AmountCents,
		Status:               string(o.Status),
		GatewayTransactionId: o.GatewayTransactionId,
		SnapToken:            o.SnapToken,
		QRCodeURL:            o.QRCodeURL,
		PaidAt:               o.PaidAt,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
