package fakedata

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/adapters/repository/memory"
	"github.com/ogurasousui/employee-analytics/internal/core/seed"
)

// faker の乱数源はパッケージ共有のため、このパッケージのテストは並行実行しません。

var _ seed.Faker = (*Provider)(nil)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestProvider_Values(t *testing.T) {
	p := NewProvider(1)

	if p.FirstName() == "" || p.LastName() == "" {
		t.Fatalf("expected non-empty names")
	}
	if email := p.Email(); !strings.Contains(email, "@") {
		t.Fatalf("unexpected email: %q", email)
	}
	if p.PhoneNumber() == "" {
		t.Fatalf("expected phone number")
	}
	if p.Sentence() == "" {
		t.Fatalf("expected sentence")
	}
}

func TestProvider_WordsAndParagraph(t *testing.T) {
	p := NewProvider(2)

	if got := p.Words(4); len(strings.Fields(got)) != 4 {
		t.Fatalf("expected 4 words, got %q", got)
	}
	if got := p.Words(0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := p.Paragraph(3); got == "" {
		t.Fatalf("expected paragraph")
	}
}

func TestNewProvider_SameSeedRepeatsValues(t *testing.T) {
	draw := func(p *Provider) []string {
		return []string{p.FirstName(), p.LastName(), p.Email(), p.PhoneNumber(), p.Words(3), p.Paragraph(2)}
	}

	first := draw(NewProvider(42))
	second := draw(NewProvider(42))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("value %d differs between runs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestNewProvider_RerunWithSameSeedCreatesNothing(t *testing.T) {
	store := memory.NewStore()
	repos := seed.Repositories{
		Departments: store.Departments(),
		Positions:   store.Positions(),
		Users:       store.Users(),
		Employees:   store.Employees(),
		Attendance:  store.Attendance(),
		Performance: store.Performance(),
	}
	clock := fixedClock{now: time.Date(2025, 6, 18, 12, 30, 0, 0, time.UTC)}

	run := func() *seed.Summary {
		t.Helper()
		gen := seed.NewGenerator(repos, rand.New(rand.NewPCG(42, 21)), NewProvider(42), clock, nil)
		summary, err := gen.Generate(context.Background(), seed.GenerateInput{EmployeeCount: 3})
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		return summary
	}

	first := run()
	if first.EmployeesCreated != 3 {
		t.Fatalf("expected 3 employees on first run, got %+v", first)
	}
	after := store.Stats()

	if second := run(); *second != (seed.Summary{}) {
		t.Fatalf("expected nothing created on re-run, got %+v", second)
	}
	if stats := store.Stats(); stats != after {
		t.Fatalf("store grew on re-run: before %+v after %+v", after, stats)
	}
}
