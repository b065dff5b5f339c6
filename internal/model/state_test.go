package model

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/shhac/featuredesk/internal/domain"
)

func TestNewApplicationState_Defaults(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	s := NewApplicationState()
	assert.Equal(t, domain.EndpointCalculateFeatures, s.Endpoint())

	label, _ := s.Request.SendLabel.Get()
	assert.Equal(t, SendLabelIdle, label)

	editable, _ := s.Request.Editable.Get()
	assert.True(t, editable)

	msg, _ := s.Server.Message.Get()
	assert.Equal(t, domain.StatusMessageChecking, msg)
}

func TestApplicationState_EndpointFallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	s := NewApplicationState()
	_ = s.SelectedEndpoint.Set("health")
	assert.Equal(t, domain.EndpointHealth, s.Endpoint())

	_ = s.SelectedEndpoint.Set("bogus")
	assert.Equal(t, domain.EndpointCalculateFeatures, s.Endpoint())
}

func TestRequestState_ApplyDraftAndSending(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	r := NewRequestState()
	r.ApplyDraft(LoadSample(domain.EndpointHealth))

	text, _ := r.TextData.Get()
	editable, _ := r.Editable.Get()
	placeholder, _ := r.Placeholder.Get()
	assert.Empty(t, text)
	assert.False(t, editable)
	assert.Equal(t, PlaceholderHealth, placeholder)

	r.SetSending(true)
	label, _ := r.SendLabel.Get()
	sending, _ := r.Sending.Get()
	assert.Equal(t, SendLabelSending, label)
	assert.True(t, sending)

	r.SetSending(false)
	label, _ = r.SendLabel.Get()
	assert.Equal(t, SendLabelIdle, label)
}

func TestServerState_Apply(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	s := NewServerState()
	s.Apply(domain.ServerStatus{Online: true, Message: domain.StatusMessageOnline})

	online, _ := s.Online.Get()
	msg, _ := s.Message.Get()
	assert.True(t, online)
	assert.Equal(t, domain.StatusMessageOnline, msg)
}
