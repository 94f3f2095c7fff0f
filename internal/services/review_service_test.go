package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReview(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateReviewRequest
		ok      bool
		message string
	}{
		{"valid", CreateReviewRequest{Rating: 4, Comment: "Très bon produit"}, true, ""},
		{"rating too low", CreateReviewRequest{Rating: 0, Comment: "ok"}, false, "rating must be between 1 and 5"},
		{"rating too high", CreateReviewRequest{Rating: 6, Comment: "ok"}, false, "rating must be between 1 and 5"},
		{"empty comment", CreateReviewRequest{Rating: 3, Comment: ""}, false, "comment cannot be empty"},
		{"whitespace comment", CreateReviewRequest{Rating: 3, Comment: "   "}, false, "comment cannot be empty"},
		{"boundary ratings", CreateReviewRequest{Rating: 1, Comment: "ok"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, message := ValidateReview(&tt.req)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.message, message)
		})
	}
}
