package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	services := All()

	assert.Len(t, services, 3)

	ids := make([]string, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
		assert.Greater(t, s.PricePerHour, 0.0, "%s must have an hourly rate", s.ID)
		assert.Equal(t, 4, s.MinBookingHours)
		assert.NotEmpty(t, s.Features)
	}

	assert.ElementsMatch(t, []string{"baby-care", "elderly-care", "sick-care"}, ids)
}

func TestByID(t *testing.T) {
	svc, ok := ByID("elderly-care")

	assert.True(t, ok)
	assert.Equal(t, "Elderly Care", svc.Name)
	assert.Equal(t, 600.0, svc.PricePerHour)

	_, ok = ByID("pet-care")
	assert.False(t, ok)
}
