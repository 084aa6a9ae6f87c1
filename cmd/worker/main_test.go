package main

import (
	"testing"

	"github.com/streadway/amqp"
)

func TestRetryCountHeaderWidths(t *testing.T) {
	cases := []struct {
		name    string
		headers amqp.Table
		want    int
	}{
		{"missing", amqp.Table{}, 0},
		{"nil table", nil, 0},
		{"int", amqp.Table{"x-retry-count": 2}, 2},
		{"int8", amqp.Table{"x-retry-count": int8(1)}, 1},
		{"int16", amqp.Table{"x-retry-count": int16(3)}, 3},
		{"int32", amqp.Table{"x-retry-count": int32(2)}, 2},
		{"int64", amqp.Table{"x-retry-count": int64(3)}, 3},
		{"garbage", amqp.Table{"x-retry-count": "two"}, 0},
	}

	for _, tc := range cases {
		if got := retryCount(tc.headers); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestRetryCountStopsAtMax(t *testing.T) {
	// A message that has been republished maxRetries times must not go
	// around again.
	headers := amqp.Table{"x-retry-count": int32(maxRetries)}
	if retryCount(headers) < maxRetries {
		t.Fatalf("expected retry count at cap, got %d", retryCount(headers))
	}
}
