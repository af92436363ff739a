package product

import (
	"Bakehouse-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetermineExpiryStatus(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	date := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name   string
		expiry *time.Time
		want   string
	}{
		{"no expiry date", nil, domain.ProductStatusFresh},
		{"already expired", date(2025, 6, 9), domain.ProductStatusExpired},
		{"expires today", date(2025, 6, 10), domain.ProductStatusExpiresToday},
		{"expires tomorrow", date(2025, 6, 11), domain.ProductStatusExpiringSoon},
		{"expires in three days", date(2025, 6, 13), domain.ProductStatusExpiringSoon},
		{"expires in four days", date(2025, 6, 14), domain.ProductStatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineExpiryStatus(tt.expiry, now))
		})
	}
}
