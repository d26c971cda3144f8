package handlers

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func queryListFor(t *testing.T, target string) []string {
	t.Helper()

	app := fiber.New()
	var got []string
	app.Get("/teachers", func(c *fiber.Ctx) error {
		got = queryList(c, "subject")
		return c.SendStatus(fiber.StatusOK)
	})

	if _, err := app.Test(httptest.NewRequest("GET", target, nil)); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return got
}

func TestQueryList(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"absent key", "/teachers", nil},
		{"single value", "/teachers?subject=math", []string{"math"}},
		{"repeated key", "/teachers?subject=math&subject=it", []string{"math", "it"}},
		{"comma list", "/teachers?subject=math,physics", []string{"math", "physics"}},
		{"mixed", "/teachers?subject=math,physics&subject=it", []string{"math", "physics", "it"}},
		{"empty entries dropped", "/teachers?subject=math,,%20", []string{"math"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := queryListFor(t, tt.target); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("queryList() = %v, want %v", got, tt.want)
			}
		})
	}
}
