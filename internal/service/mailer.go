// internal/service/mailer.go
package service

import (
    "fmt"
    "log"
    "math/rand"
)

// Mailer is the boundary toward the outbound mail relay. Delivery itself is
// owned by excluded infrastructure.
type Mailer interface {
    SendClientUpdate(recipient, subject, body string) error
}

//////////////////////////
// Example Mock Mailer  //
//////////////////////////

// MockMailer simulates relay delivery with 90% success
type MockMailer struct{}

func (MockMailer) SendClientUpdate(recipient, subject, _ string) error {
    if rand.Float64() < 0.9 {
        log.Println("✉️ delivered to", recipient, ":", subject)
        return nil
    }
    return fmt.Errorf("mock relay delivery failed")
}

var _ Mailer = MockMailer{}
