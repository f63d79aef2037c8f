package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name    string
		company string
		phone   string
		other   [2]string
		same    bool
	}{
		{
			name:    "identical inputs collide",
			company: "Acme Cleaning", phone: "(212) 555-0100",
			other: [2]string{"Acme Cleaning", "(212) 555-0100"},
			same:  true,
		},
		{
			name:    "company name case is ignored",
			company: "ACME Cleaning", phone: "(212) 555-0100",
			other: [2]string{"acme cleaning", "(212) 555-0100"},
			same:  true,
		},
		{
			name:    "surrounding whitespace is ignored",
			company: "  Acme Cleaning  ", phone: " (212) 555-0100 ",
			other: [2]string{"Acme Cleaning", "(212) 555-0100"},
			same:  true,
		},
		{
			name:    "different phone separates businesses",
			company: "Acme Cleaning", phone: "(212) 555-0100",
			other: [2]string{"Acme Cleaning", "(212) 555-0199"},
			same:  false,
		},
		{
			name:    "different name separates businesses",
			company: "Acme Cleaning", phone: "(212) 555-0100",
			other: [2]string{"Apex Cleaning", "(212) 555-0100"},
			same:  false,
		},
		{
			name:    "interior whitespace is significant",
			company: "Acme Cleaning", phone: "(212) 555-0100",
			other: [2]string{"Acme  Cleaning", "(212) 555-0100"},
			same:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Identity(tt.company, tt.phone)
			b := Identity(tt.other[0], tt.other[1])

			assert.Len(t, a, 12)
			assert.Len(t, b, 12)
			if tt.same {
				assert.Equal(t, a, b)
			} else {
				assert.NotEqual(t, a, b)
			}
		})
	}
}

func TestIdentityIsDeterministic(t *testing.T) {
	first := Identity("Acme Cleaning", "(212) 555-0100")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Identity("Acme Cleaning", "(212) 555-0100"))
	}
}

func TestComputeID(t *testing.T) {
	lead := NewLead("Acme Cleaning", "Janitorial")
	lead.Phone = "(212) 555-0100"
	lead.ComputeID()

	assert.Equal(t, Identity("Acme Cleaning", "(212) 555-0100"), lead.ID)
	assert.NotEmpty(t, lead.DateAdded)
}

func TestHasEmail(t *testing.T) {
	lead := &Lead{}
	assert.False(t, lead.HasEmail())

	lead.Email = "   "
	assert.False(t, lead.HasEmail())

	lead.Email = "info@acme-cleaning.com"
	assert.True(t, lead.HasEmail())
}
