package quotes

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/speps/go-hashids/v2"

	"renovo/internal/configurator"
)

const (
	numberMinLength = 8
	numberAlphabet  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var ErrInvalidNumber = errors.New("invalid quote number")

// Quote is a preliminary estimate sent to a customer. Numbers are short,
// unambiguous codes derived from the issue time and a process-wide sequence.
type Quote struct {
	configurator.Breakdown

	Number   string                  `json:"number"`
	Name     string                  `json:"name"`
	Email    string                  `json:"email"`
	Market   configurator.MarketType `json:"market"`
	IssuedAt time.Time               `json:"issued_at"`
}

type Issuer struct {
	h   *hashids.HashID
	seq atomic.Int64
	now func() time.Time
}

func NewIssuer(salt string) (*Issuer, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = numberMinLength
	hd.Alphabet = numberAlphabet

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("init hashids: %w", err)
	}
	return &Issuer{h: h, now: time.Now}, nil
}

func (i *Issuer) Issue(name, email string, market configurator.MarketType, b configurator.Breakdown) (*Quote, error) {
	issued := i.now().UTC()
	number, err := i.h.EncodeInt64([]int64{issued.Unix(), i.seq.Add(1)})
	if err != nil {
		return nil, fmt.Errorf("encode quote number: %w", err)
	}

	return &Quote{
		Breakdown: b,
		Number:    number,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Market:    market,
		IssuedAt:  issued,
	}, nil
}

// IssuedAt recovers the issue time from a quote number.
func (i *Issuer) IssuedAt(number string) (time.Time, error) {
	parts, err := i.h.DecodeInt64WithError(strings.ToUpper(strings.TrimSpace(number)))
	if err != nil || len(parts) != 2 {
		return time.Time{}, ErrInvalidNumber
	}
	return time.Unix(parts[0], 0).UTC(), nil
}
