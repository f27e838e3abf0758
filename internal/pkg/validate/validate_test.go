package validate

import (
	"errors"
	"testing"

	"github.com/hotel-booking-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"a@x.com", true},
		{"amy.lin+hotel@example.com.tw", true},
		{"not-an-email", false},
		{"", false},
		{"a@", false},
		{"@x.com", false},
	}
	for _, tc := range cases {
		err := Email(tc.in)
		if tc.valid {
			assert.NoError(t, err, tc.in)
			continue
		}
		require.Error(t, err, tc.in)
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		assert.Equal(t, domain.MsgInvalidEmail, err.Error())
	}
}

func TestStruct_EmailFieldMapsToEmailMessage(t *testing.T) {
	err := Struct(domain.OrderEmailRequest{Email: "not-an-email", Name: "Bob"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.Equal(t, domain.MsgInvalidEmail, err.Error())
}

func TestStruct_MissingFields(t *testing.T) {
	err := Struct(domain.CreateOrderRequest{RoomID: "r1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.Equal(t, domain.MsgInvalidBody, err.Error())
	assert.NotContains(t, err.Error(), "CreateOrderRequest")
}

func TestStruct_BelowMinimumHidesFieldNames(t *testing.T) {
	err := Struct(domain.CreateOrderRequest{
		RoomID: "r1", CheckInDate: "2026-11-01", CheckOutDate: "2026-11-03", PeopleNum: -1,
		UserInfo: domain.OrderUserInfo{Name: "Amy", Phone: "0912", Email: "a@x.com", Address: domain.Address{Zipcode: 802, Detail: "x"}},
	})
	require.Error(t, err)
	assert.Equal(t, domain.MsgInvalidBody, err.Error())
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(domain.OrderEmailRequest{Email: "b@y.com", Name: "Bob"}))
}
