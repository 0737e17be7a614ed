package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("get event: %w", ErrEventNotFound), "not_found"},
		{ErrAlreadyRegistered, "conflict"},
		{ErrAlreadyPaid, "conflict"},
		{fmt.Errorf("%w: cost", ErrInvalidAmount), "invalid_argument"},
		{ErrMissingCredential, "unauthorized"},
		{ErrEmailMismatch, "forbidden"},
		{fmt.Errorf("x: %w: %w", ErrStoreUnavailable, errors.New("eof")), "upstream"},
		{fmt.Errorf("retrieve: %w", context.DeadlineExceeded), "upstream"},
		{errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Kind(tt.err), tt.err.Error())
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "event not found", Message(fmt.Errorf("get event: %w", ErrEventNotFound)))
	assert.Equal(t, "payment gateway unavailable", Message(fmt.Errorf("a: %w: %w", ErrGatewayUnavailable, errors.New("dial"))))
	assert.Empty(t, Message(errors.New("plain")))
}

func TestDetailf(t *testing.T) {
	err := fmt.Errorf("create event: %w", Detailf(ErrValidation, "title is required"))

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "invalid_argument", Kind(err))
	assert.Equal(t, "validation error: title is required", Message(err))
	assert.Equal(t, "invalid amount: cost must be positive", Message(Detailf(ErrInvalidAmount, "cost must be positive")))
}

func TestClubPatch_Apply(t *testing.T) {
	name := "New"
	blank := ""
	c := ClubPatch{ClubName: &name, BannerImage: &blank}.Apply(Club{ClubName: "Old", BannerImage: "b.png", Category: "games"})

	assert.Equal(t, "New", c.ClubName)
	assert.Equal(t, "b.png", c.BannerImage)
	assert.Equal(t, "games", c.Category)
}
