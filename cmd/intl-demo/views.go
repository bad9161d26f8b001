package main

import (
	"time"

	"github.com/dmitrymomot/intl/pkg/intl"
)

const (
	cartItems = 3
	sampleSum = 1234567.891
	salePrice = 19.99
)

type indexView struct {
	Lang     string
	Title    string
	Greeting string
	Today    string
	Time     string
	Number   string
	Percent  string
	Price    string
	Cart     string
	LastSeen string
	Label    string
	Save     string
	Saved    string
	Locales  []string
}

type field struct {
	dst *string
	fn  func() (string, error)
}

func newIndexView(i *intl.Intl, now time.Time, name string, saved bool) (indexView, error) {
	v := indexView{Lang: i.Locale(), Locales: i.Config().AvailableLocales}

	fields := []field{
		{&v.Title, func() (string, error) { return i.Get("app.title", nil) }},
		{&v.Today, func() (string, error) { return i.Get("today", intl.Options{"today": now}) }},
		{&v.Time, func() (string, error) { return i.FormatTime(now, "short", nil) }},
		{&v.Number, func() (string, error) { return i.FormatNumber(sampleSum, "", nil) }},
		{&v.Percent, func() (string, error) { return i.FormatNumber(0.25, "percent", nil) }},
		{&v.Price, func() (string, error) {
			return i.FormatNumber(salePrice, "currency", intl.Options{"currency": "EUR"})
		}},
		{&v.Cart, func() (string, error) { return i.Get("cart", intl.Options{"count": cartItems}) }},
		{&v.LastSeen, func() (string, error) {
			when, err := i.FormatRelative(now.Add(-3*time.Hour), "", nil)
			if err != nil {
				return "", err
			}
			return i.Get("lastSeen", intl.Options{"when": when})
		}},
		{&v.Label, func() (string, error) { return i.Get("language.label", nil) }},
		{&v.Save, func() (string, error) { return i.Get("language.save", nil) }},
	}
	if name != "" {
		fields = append(fields, field{&v.Greeting, func() (string, error) {
			return i.Get("greeting", intl.Options{"name": name})
		}})
	}
	if saved {
		fields = append(fields, field{&v.Saved, func() (string, error) { return i.Get("language.saved", nil) }})
	}

	for _, f := range fields {
		s, err := f.fn()
		if err != nil {
			return indexView{}, err
		}
		*f.dst = s
	}
	return v, nil
}

func (v indexView) items() []string {
	return []string{v.Today, v.Time, v.Number, v.Percent, v.Price, v.Cart, v.LastSeen}
}
