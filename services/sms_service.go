// services/sms_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSService sends a short birthday text as a secondary, best-effort channel
// for contacts that have a phone number on file.
type SMSService struct {
	client *twilio.RestClient
	from   string
}

// NewSMSService returns nil when Twilio credentials are absent; the pipeline
// treats a nil notifier as "SMS disabled".
func NewSMSService(accountSid, authToken, from string) *SMSService {
	if accountSid == "" || authToken == "" || from == "" {
		return nil
	}

	return &SMSService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *SMSService) SendBirthdaySMS(to, name, businessName string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(fmt.Sprintf("Happy Birthday, %s! Check your inbox for a little something from %s.", name, businessName))

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid == nil {
		return errors.New("twilio returned no message SID")
	}
	return nil
}
