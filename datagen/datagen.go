// Copyright 2026 The abide Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package datagen generates randomized test fixtures: identifiers,
// email addresses, phone numbers, monetary amounts, and complete user
// records.
//
// The generators trade determinism for uniqueness. Tests that need
// reproducible values should construct their fixtures by hand and use
// this package only where collisions between parallel runs matter, for
// example when registering accounts against a shared environment.
package datagen

import (
	"fmt"

	"github.com/mazen160/go-random"
)

// A User is a complete set of signup data for one synthetic account.
type User struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
}

// String returns a random alphanumeric string of length n.
func String(n int) (string, error) {
	return random.String(n)
}

// Email returns a random address under domain, for example
// "x7qk2mwp@testmail.com". An empty domain defaults to testmail.com.
func Email(domain string) (string, error) {
	if domain == "" {
		domain = "testmail.com"
	}
	user, err := random.String(8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s@%s", user, domain), nil
}

// Phone returns a random North American phone number formatted as
// "(NNN) NNN-NNNN". Area codes and exchanges start at 200 so the
// result never collides with service numbers.
func Phone() (string, error) {
	area, err := random.IntRange(200, 999)
	if err != nil {
		return "", err
	}
	exchange, err := random.IntRange(200, 999)
	if err != nil {
		return "", err
	}
	line, err := random.IntRange(1000, 9999)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%03d) %03d-%04d", area, exchange, line), nil
}

// Amount returns a random monetary amount in [min, max), rounded to
// whole cents.
func Amount(min, max float64) (float64, error) {
	cents, err := random.IntRange(int(min*100), int(max*100))
	if err != nil {
		return 0, err
	}
	return float64(cents) / 100, nil
}

// NewUser returns a complete user record with a randomized username,
// email, and phone number. The username is prefix plus a random
// suffix; an empty prefix defaults to "testuser".
func NewUser(prefix string) (*User, error) {
	if prefix == "" {
		prefix = "testuser"
	}

	suffix, err := random.String(6)
	if err != nil {
		return nil, err
	}
	email, err := Email("")
	if err != nil {
		return nil, err
	}
	phone, err := Phone()
	if err != nil {
		return nil, err
	}

	return &User{
		Username:  fmt.Sprintf("%s_%s", prefix, suffix),
		Password:  "TestPass123!",
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Phone:     phone,
		Address:   "123 Test Street",
		City:      "Test City",
		State:     "CA",
		ZipCode:   "12345",
	}, nil
}
