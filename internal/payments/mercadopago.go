package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

// PreferenceCreator is the optional payment collaborator. A nil creator
// means payments are not configured; bookings still go through.
type PreferenceCreator interface {
	CreatePreference(ctx context.Context, b *models.Booking, amount float64) (string, error)
}

type MercadoPago struct {
	client preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		client: preference.NewClient(cfg),
	}, nil
}

// CreatePreference opens a checkout preference for the booking and
// returns its id, kept on the booking as PaymentRef.
func (m *MercadoPago) CreatePreference(ctx context.Context, b *models.Booking, amount float64) (string, error) {
	req := preference.Request{
		ExternalReference: fmt.Sprintf("booking-%d", b.ID),
		Items: []preference.ItemRequest{
			{
				Title:     fmt.Sprintf("Landscaping service %s %s", b.AppointmentDate.Format("2006-01-02"), b.TimeSlot),
				Quantity:  1,
				UnitPrice: amount,
			},
		},
	}

	res, err := m.client.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("mercadopago preference: %w", err)
	}

	return res.ID, nil
}

var _ PreferenceCreator = (*MercadoPago)(nil)
