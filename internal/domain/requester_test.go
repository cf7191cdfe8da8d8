package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRequester_Validate(t *testing.T) {
	tests := []struct {
		name      string
		requester Requester
		wantErr   bool
	}{
		{
			name:      "registered user",
			requester: Requester{UserID: strPtr("u1")},
		},
		{
			name:      "guest with full contact",
			requester: Requester{Guest: &GuestContact{Name: "Jane", Email: "j@x.com", Phone: "+921234567"}},
		},
		{
			name:      "neither user nor guest",
			requester: Requester{},
			wantErr:   true,
		},
		{
			name:      "both user and guest",
			requester: Requester{UserID: strPtr("u1"), Guest: &GuestContact{Name: "Jane", Email: "j@x.com", Phone: "+92"}},
			wantErr:   true,
		},
		{
			name:      "empty user id",
			requester: Requester{UserID: strPtr("")},
			wantErr:   true,
		},
		{
			name:      "guest missing phone",
			requester: Requester{Guest: &GuestContact{Name: "Jane", Email: "j@x.com"}},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.requester.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}
