package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"activity-signup-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPError(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"Not found", domain.ErrActivityNotFound, http.StatusNotFound, "Activity not found"},
		{"Already signed up", domain.ErrAlreadySignedUp, http.StatusBadRequest, "Student is already signed up"},
		{"Full", domain.ErrActivityFull, http.StatusBadRequest, "Activity is full"},
		{"Wrapped", fmt.Errorf("signup: %w", domain.ErrActivityFull), http.StatusBadRequest, "Activity is full"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr, ok := domain.ToHTTPError(tc.err)

			assert.True(t, ok)
			assert.Equal(t, tc.status, httpErr.Status)
			assert.Equal(t, tc.detail, httpErr.Detail)
		})
	}
}

func TestToHTTPError_Unknown(t *testing.T) {
	_, ok := domain.ToHTTPError(errors.New("boom"))
	assert.False(t, ok)

	_, ok = domain.ToHTTPError(domain.ErrMalformedCatalog)
	assert.False(t, ok)
}

func TestActivity_Clone(t *testing.T) {
	original := &domain.Activity{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@x.com"}}

	clone := original.Clone()
	clone.Participants[0] = "b@x.com"
	clone.Participants = append(clone.Participants, "c@x.com")

	assert.Equal(t, []string{"a@x.com"}, original.Participants)
}

func TestActivity_IsFull(t *testing.T) {
	activity := &domain.Activity{MaxParticipants: 2, Participants: []string{"a@x.com"}}
	assert.False(t, activity.IsFull())

	activity.Participants = append(activity.Participants, "b@x.com")
	assert.True(t, activity.IsFull())
	assert.True(t, activity.HasParticipant("b@x.com"))
	assert.False(t, activity.HasParticipant("c@x.com"))
}
