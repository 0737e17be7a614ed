package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"
)

const trackingRandomBytes = 8

// TrackingIDGenerator produces user-facing reference codes of the form
// {base36 unix millis}-{16 lowercase hex}.
type TrackingIDGenerator struct {
	now    func() time.Time
	random io.Reader
}

func NewTrackingIDGenerator() *TrackingIDGenerator {
	return &TrackingIDGenerator{now: time.Now, random: rand.Reader}
}

func (g *TrackingIDGenerator) NewTrackingID() (string, error) {
	buf := make([]byte, trackingRandomBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	ts := strconv.FormatInt(g.now().UnixMilli(), 36)
	return ts + "-" + hex.EncodeToString(buf), nil
}
