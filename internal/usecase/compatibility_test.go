package usecase

import (
	"strings"
	"testing"

	"github.com/pcforge/backend/internal/domain"
)

func TestCheck(t *testing.T) {
	checker := NewCompatibilityChecker()

	cpu := func(socket string) domain.Product {
		specs := map[string]string{}
		if socket != "" {
			specs["Socket"] = socket
		}
		return testProduct("cpu", "AMD Ryzen 5 7600 CPU", "CPU", 200, specs)
	}
	board := func(socket, memory string) domain.Product {
		specs := map[string]string{}
		if socket != "" {
			specs["Socket"] = socket
		}
		if memory != "" {
			specs["Memory Type"] = memory
		}
		return testProduct("mobo", "B650 Motherboard", "Motherboard", 150, specs)
	}
	ram := func(memory string) domain.Product {
		specs := map[string]string{}
		if memory != "" {
			specs["Memory Type"] = memory
		}
		return testProduct("ram", "Vengeance 32GB RAM", "RAM", 80, specs)
	}

	t.Run("matching build passes", func(t *testing.T) {
		report := checker.Check([]domain.Product{cpu("AM5"), board("AM5", "DDR5"), ram("DDR5")})
		if !report.OK {
			t.Errorf("OK = false, issues = %v, want pass", report.Issues)
		}
		if len(report.Issues) != 0 {
			t.Errorf("issues = %v, want none", report.Issues)
		}
	})

	t.Run("socket mismatch names both values", func(t *testing.T) {
		report := checker.Check([]domain.Product{cpu("AM5"), board("LGA1700", "DDR5")})
		if report.OK {
			t.Fatal("OK = true, want fail")
		}
		if len(report.Issues) != 1 {
			t.Fatalf("issues = %v, want exactly 1", report.Issues)
		}
		if !strings.Contains(report.Issues[0], "AM5") || !strings.Contains(report.Issues[0], "LGA1700") {
			t.Errorf("issue %q should name both socket values", report.Issues[0])
		}
	})

	t.Run("memory type mismatch is reported", func(t *testing.T) {
		report := checker.Check([]domain.Product{board("AM5", "DDR5"), ram("DDR4")})
		if report.OK {
			t.Fatal("OK = true, want fail")
		}
		if !strings.Contains(report.Issues[0], "DDR4") || !strings.Contains(report.Issues[0], "DDR5") {
			t.Errorf("issue %q should name both memory types", report.Issues[0])
		}
	})

	t.Run("loose equality ignores case and whitespace", func(t *testing.T) {
		report := checker.Check([]domain.Product{cpu("am 5"), board("AM5", "ddr5"), ram("DDR 5")})
		if !report.OK {
			t.Errorf("OK = false, issues = %v, want pass under loose equality", report.Issues)
		}
	})

	t.Run("rule skipped when either spec is absent", func(t *testing.T) {
		tests := []struct {
			name  string
			parts []domain.Product
		}{
			{"cpu missing socket", []domain.Product{cpu(""), board("AM5", "DDR5")}},
			{"board missing socket", []domain.Product{cpu("AM5"), board("", "DDR5")}},
			{"ram missing memory type", []domain.Product{board("AM5", "DDR5"), ram("")}},
			{"board missing memory type", []domain.Product{board("AM5", ""), ram("DDR5")}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				report := checker.Check(tt.parts)
				if !report.OK {
					t.Errorf("OK = false, issues = %v, want rule skipped", report.Issues)
				}
			})
		}
	})

	t.Run("rule skipped when a category is absent", func(t *testing.T) {
		report := checker.Check([]domain.Product{cpu("AM5")})
		if !report.OK {
			t.Errorf("OK = false, issues = %v, want pass with no counterpart", report.Issues)
		}
	})

	t.Run("both rules can fail together", func(t *testing.T) {
		report := checker.Check([]domain.Product{cpu("AM5"), board("LGA1700", "DDR4"), ram("DDR5")})
		if report.OK {
			t.Fatal("OK = true, want fail")
		}
		if len(report.Issues) != 2 {
			t.Errorf("issues = %v, want 2", report.Issues)
		}
	})

	t.Run("empty parts list passes", func(t *testing.T) {
		report := checker.Check(nil)
		if !report.OK {
			t.Errorf("OK = false, want vacuous pass")
		}
	})
}
