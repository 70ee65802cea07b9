package mock

import (
	"smilelink/internal/domain/entity"
	"smilelink/internal/domain/service"
)

// DemoPassword unlocks every seeded email account in mock mode.
const DemoPassword = "smilelink123"

func ptr[T any](v T) *T { return &v }

func seedChildren() []entity.Child {
	return []entity.Child{
		{
			ID:               "N001",
			Name:             "Sofía Martínez",
			Age:              8,
			Gender:           "Femenino",
			Description:      "Le gusta dibujar y los gatos.",
			Needs:            []string{"Mochila", "Zapatos escolares"},
			CurrentSponsorID: ptr("P001"),
			SponsorshipState: entity.SponsorshipSponsored,
			SponsorshipDate:  ptr("2025-11-01"),
		},
		{
			ID:               "N002",
			Name:             "Carlos Ramírez",
			Age:              10,
			Gender:           "Masculino",
			Description:      "Apasionado por el fútbol y las ciencias.",
			Needs:            []string{"Balón de fútbol", "Libros de ciencia"},
			CurrentSponsorID: ptr("P002"),
			SponsorshipState: entity.SponsorshipSponsored,
			SponsorshipDate:  ptr("2025-10-15"),
		},
		{
			ID:               "N003",
			Name:             "Ana Patricia López",
			Age:              7,
			Gender:           "Femenino",
			Description:      "Le encanta bailar y la música.",
			Needs:            []string{"Zapatos de ballet", "Vestido"},
			SponsorshipState: entity.SponsorshipAvailable,
		},
		{
			ID:               "N004",
			Name:             "Miguel Ángel Torres",
			Age:              9,
			Gender:           "Masculino",
			Description:      "Interesado en robótica y videojuegos.",
			Needs:            []string{"Kit de robótica básico", "Mochila"},
			CurrentSponsorID: ptr("P003"),
			SponsorshipState: entity.SponsorshipSponsored,
			SponsorshipDate:  ptr("2025-11-10"),
		},
	}
}

func seedSponsors(hasher service.PasswordHasher) []entity.Sponsor {
	// Ignoring the hash error: bcrypt only fails on oversized input, and the
	// demo password is a constant.
	hash, _ := hasher.Hash(DemoPassword)

	return []entity.Sponsor{
		{
			ID:                    "P001",
			Name:                  "Juan Damián Ortega",
			Email:                 "juan@smilelink.org",
			PasswordHash:          ptr(hash),
			RegistrationDate:      "2025-10-20",
			GoogleAuthID:          ptr("google_12345"),
			Address:               "Av. Universidad 100, Aguascalientes",
			Phone:                 "449-123-4567",
			SponsorshipHistoryIDs: []string{"AP001", "AP005"},
		},
		{
			ID:                    "P002",
			Name:                  "María González López",
			Email:                 "maria.gonzalez@email.com",
			PasswordHash:          ptr(hash),
			RegistrationDate:      "2025-09-15",
			Address:               "Calle Principal 456, Aguascalientes",
			Phone:                 "449-234-5678",
			SponsorshipHistoryIDs: []string{"AP002"},
		},
		{
			ID:                    "P003",
			Name:                  "Roberto Sánchez García",
			Email:                 "roberto.sanchez@email.com",
			PasswordHash:          ptr(hash),
			RegistrationDate:      "2024-11-10",
			GoogleAuthID:          ptr("google_67890"),
			Address:               "Blvd. Norte 789, Aguascalientes",
			Phone:                 "449-345-6789",
			SponsorshipHistoryIDs: []string{"AP003"},
		},
	}
}

func seedSponsorships() []entity.Sponsorship {
	return []entity.Sponsorship{
		{
			ID:              "AP001",
			SponsorID:       "P001",
			ChildID:         "N001",
			StartDate:       "2025-11-01",
			Type:            entity.SponsorshipChoice,
			State:           entity.RegistrationActive,
			DeliveryIDs:     []string{"E001", "E002"},
			DeliveryLat:     ptr(21.8853),
			DeliveryLng:     ptr(-102.2916),
			DeliveryAddress: ptr("Calle Norte 45, Centro, Aguascalientes"),
			DeliveryPointID: ptr("PE001"),
		},
		{
			ID:              "AP002",
			SponsorID:       "P002",
			ChildID:         "N002",
			StartDate:       "2025-10-15",
			Type:            entity.SponsorshipRandom,
			State:           entity.RegistrationActive,
			DeliveryIDs:     []string{"E003"},
			DeliveryLat:     ptr(21.8700),
			DeliveryLng:     ptr(-102.2900),
			DeliveryAddress: ptr("Av. Sur 123, Aguascalientes"),
			DeliveryPointID: ptr("PE002"),
		},
		{
			ID:          "AP003",
			SponsorID:   "P003",
			ChildID:     "N004",
			StartDate:   "2025-11-10",
			Type:        entity.SponsorshipChoice,
			State:       entity.RegistrationActive,
			DeliveryIDs: []string{},
		},
		// AP004 was purged from the dataset; the gap stays so id synthesis is
		// exercised against non-contiguous sequences.
		{
			ID:          "AP005",
			SponsorID:   "P001",
			ChildID:     "N002",
			StartDate:   "2024-12-01",
			EndDate:     ptr("2025-09-30"),
			Type:        entity.SponsorshipRandom,
			State:       entity.RegistrationFinished,
			DeliveryIDs: []string{"E004"},
		},
	}
}

func seedDeliveries() []entity.Delivery {
	return []entity.Delivery{
		{
			ID:                 "E001",
			SponsorshipID:      "AP001",
			GiftDescription:    "Bicicleta roja",
			ScheduledDate:      "2025-12-24",
			ActualDeliveryDate: ptr("2025-12-23"),
			State:              entity.DeliveryDelivered,
			Notes:              "Entregado a la madre del niño",
			DeliveryPointID:    "PE001",
			EvidencePhotoPath:  ptr("/uploads/E001_proof.jpg.enc"),
		},
		{
			ID:              "E002",
			SponsorshipID:   "AP001",
			GiftDescription: "Mochila escolar con útiles",
			ScheduledDate:   "2025-08-15",
			State:           entity.DeliveryPending,
			Notes:           "Programado para inicio de ciclo escolar",
			DeliveryPointID: "PE001",
		},
		{
			ID:              "E003",
			SponsorshipID:   "AP002",
			GiftDescription: "Balón de fútbol profesional",
			ScheduledDate:   "2025-12-20",
			State:           entity.DeliveryInProgress,
			Notes:           "Regalo en tránsito",
			DeliveryPointID: "PE002",
		},
		{
			ID:                 "E004",
			SponsorshipID:      "AP005",
			GiftDescription:    "Set de libros educativos",
			ScheduledDate:      "2025-04-30",
			ActualDeliveryDate: ptr("2025-04-28"),
			State:              entity.DeliveryDelivered,
			Notes:              "Entrega exitosa",
			DeliveryPointID:    "PE001",
			EvidencePhotoPath:  ptr("/uploads/E004_proof.jpg.enc"),
		},
	}
}

func seedDeliveryPoints() []entity.DeliveryPoint {
	return []entity.DeliveryPoint{
		{
			ID:               "PE001",
			Name:             "Centro de Acopio Norte",
			PhysicalAddress:  "Calle Norte 45, Centro, Aguascalientes",
			Lat:              21.8853,
			Lng:              -102.2916,
			Hours:            "Lun-Vie 9:00-17:00",
			ContactReference: "Sra. Martha",
			State:            entity.PointActive,
		},
		{
			ID:               "PE002",
			Name:             "Centro de Acopio Sur",
			PhysicalAddress:  "Av. Sur 123, Aguascalientes",
			Lat:              21.8700,
			Lng:              -102.2900,
			Hours:            "Lun-Sab 10:00-18:00",
			ContactReference: "Sr. José",
			State:            entity.PointActive,
		},
		{
			ID:               "PE003",
			Name:             "Centro de Acopio Este",
			PhysicalAddress:  "Blvd. Este 789, Aguascalientes",
			Lat:              21.8900,
			Lng:              -102.2800,
			Hours:            "Lun-Vie 8:00-16:00",
			ContactReference: "Sra. Laura",
			State:            entity.PointInactive,
		},
	}
}

func seedGiftRequests() []entity.GiftRequest {
	return []entity.GiftRequest{
		{
			ID:                   "SR001",
			ChildID:              "N001",
			InterestedSponsorID:  ptr("P001"),
			Description:          "Zapatos talla 22",
			RequestDate:          "2025-11-15",
			CloseDate:            ptr("2025-12-23"),
			State:                entity.RequestFulfilled,
			AssociatedDeliveryID: ptr("E001"),
		},
		{
			ID:          "SR002",
			ChildID:     "N003",
			Description: "Zapatos de ballet talla 20",
			RequestDate: "2025-11-18",
			State:       entity.RequestOpen,
		},
		{
			ID:                  "SR003",
			ChildID:             "N002",
			InterestedSponsorID: ptr("P002"),
			Description:         "Libros de ciencia para niños",
			RequestDate:         "2025-11-10",
			State:               entity.RequestInProgress,
		},
	}
}
