package service_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"boba-storefront/internal/service"
)

var orderNumberRe = regexp.MustCompile(`^BOBA-\d{8}-[A-Z0-9]{4}$`)

func TestGenerateOrderNumber_Format(t *testing.T) {
	now := time.Date(2024, 12, 30, 15, 4, 5, 0, time.UTC)

	for i := 0; i < 50; i++ {
		n := service.GenerateOrderNumber(now)
		if !orderNumberRe.MatchString(n) {
			t.Fatalf("unexpected format: %q", n)
		}
		if !strings.HasPrefix(n, "BOBA-20241230-") {
			t.Fatalf("date segment mismatch: %q", n)
		}
	}
}

func TestGenerateOrderNumber_Varies(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[service.GenerateOrderNumber(now)] = true
	}
	// 100 draws over ~1.7M combinations should essentially never all collide
	if len(seen) < 2 {
		t.Fatalf("expected varied suffixes, got %d distinct of 100", len(seen))
	}
}
