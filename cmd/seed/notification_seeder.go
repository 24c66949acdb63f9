package main

import (
	"log"

	"juntaplay-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the registry mapping event codes to
// notification templates.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "MEMBER_JOINED",
			DisplayName: "Novo membro no grupo",
			Template:    "Um novo membro entrou no seu grupo.",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "MEMBERSHIP_CANCELLED",
			DisplayName: "Cancelamento confirmado",
			Template:    "Sua participação foi cancelada. Reembolso de {final_refund_cents} centavos creditado na carteira.",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "PAYMENT_CONFIRMED",
			DisplayName: "Pagamento aprovado",
			Template:    "Seu pagamento de {amount_cents} centavos foi aprovado.",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "PAYMENT_FAILED",
			DisplayName: "Pagamento recusado",
			Template:    "Seu pagamento de {amount_cents} centavos não foi aprovado.",
			TargetType:  "SELF",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "GROUP_ACTIVATED",
			DisplayName: "Grupo aprovado",
			Template:    "Seu grupo \"{group_name}\" foi aprovado e já aparece no catálogo.",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "COMPLAINT_OPENED",
			DisplayName: "Nova reclamação",
			Template:    "Nova reclamação aberta: {subject}",
			TargetType:  "ADMIN",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
		},
		{
			Code:        "COMPLAINT_CLOSED",
			DisplayName: "Reclamação encerrada",
			Template:    "Sua reclamação foi encerrada: {resolution}",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "WALLET_CREDITED",
			DisplayName: "Crédito na carteira",
			Template:    "Sua carteira recebeu um crédito de {amount_cents} centavos.",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "Aviso do sistema",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
	}

	log.Println("Seeding notification types...")
	for _, t := range types {
		err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error
		if err != nil {
			log.Printf("Error: failed to seed notification type '%s': %v", t.Code, err)
		}
	}
}
