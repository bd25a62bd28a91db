package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"lg/bmi-tracker/internal/health"
	"lg/bmi-tracker/internal/store"
)

type memInserter struct {
	records []store.Record
	err     error
}

func (m *memInserter) Insert(_ context.Context, w, h, bmi float64, cat string) (store.Record, error) {
	if m.err != nil {
		return store.Record{}, m.err
	}
	rec := store.Record{ID: int64(len(m.records) + 1), Weight: w, Height: h, BMI: bmi, Category: cat}
	m.records = append(m.records, rec)
	return rec, nil
}

func TestRun_MetricSession(t *testing.T) {
	in := strings.NewReader("metric\nAda\n30\nmale\n90\n1.70\n")
	var out bytes.Buffer
	ins := &memInserter{}

	comp, err := run(context.Background(), in, &out, health.NewCalculator(), ins)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if comp.Calories == nil || *comp.Calories != 1818 {
		t.Errorf("calories = %v, want 1818", comp.Calories)
	}
	if len(ins.records) != 1 || ins.records[0].Category != health.CategoryObese {
		t.Errorf("records = %+v", ins.records)
	}
	for _, want := range []string{"Your BMI: 31.14", "Category: Obese", "1818 kcal", "Saved as record #1"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_ImperialDefaultsAndPrompts(t *testing.T) {
	in := strings.NewReader("imperial\nBo\n40\nOther\n150\n70\n")
	var out bytes.Buffer

	comp, err := run(context.Background(), in, &out, health.NewCalculator(), &memInserter{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if comp.Category != health.CategoryNormal {
		t.Errorf("category = %q, want Normal weight", comp.Category)
	}
	if !strings.Contains(out.String(), "Weight (lbs): ") || !strings.Contains(out.String(), "Height (inches): ") {
		t.Errorf("imperial prompts not shown:\n%s", out.String())
	}
}

func TestRun_ValidationError(t *testing.T) {
	in := strings.NewReader("metric\nAda\n30\nMale\n0\n1.7\n")
	ins := &memInserter{}
	_, err := run(context.Background(), in, &bytes.Buffer{}, health.NewCalculator(), ins)
	if !errors.Is(err, health.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
	if len(ins.records) != 0 {
		t.Error("record written despite validation error")
	}
}

func TestRun_NotSaved(t *testing.T) {
	in := strings.NewReader("\nAda\n30\nFemale\n70\n1.75\n")
	var out bytes.Buffer
	ins := &memInserter{err: fmt.Errorf("%w: database is locked", store.ErrPersist)}

	comp, err := run(context.Background(), in, &out, health.NewCalculator(), ins)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if comp == nil || comp.Category != health.CategoryNormal {
		t.Errorf("expected computation despite failed save, got %+v", comp)
	}
	if !strings.Contains(out.String(), "not saved") || strings.Contains(out.String(), "Saved as record") {
		t.Errorf("output should report the failed save:\n%s", out.String())
	}
}
