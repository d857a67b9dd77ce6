package event

import (
	"fmt"
	"reflect"
	"sync"

	messagebus "github.com/vardius/message-bus"
	"vincit.fi/image-location-extractor/api"
	"vincit.fi/image-location-extractor/api/apitype"
	"vincit.fi/image-location-extractor/common/logger"
)

// GuiDispatcher runs functions on the GUI thread.
type GuiDispatcher interface {
	Post(fn func())
}

type Broker struct {
	bus        messagebus.MessageBus
	dispatcher GuiDispatcher
	topics     map[api.Topic]bool
	mux        sync.Mutex

	api.Sender
}

func InitBus(queueSize int, dispatcher GuiDispatcher) *Broker {
	return &Broker{
		bus:        messagebus.New(queueSize),
		dispatcher: dispatcher,
		topics:     map[api.Topic]bool{},
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}
	s.markSubscribed(topic)
}

// ConnectToGui subscribes callback so that it is always called on the GUI
// thread through the dispatcher.
func (s *Broker) ConnectToGui(topic api.Topic, callback interface{}) {
	cb := func(params ...interface{}) {
		sendFn := func() {
			args := make([]reflect.Value, 0, len(params))
			for _, param := range params {
				args = append(args, reflect.ValueOf(param))
			}
			if logger.IsLogLevel(logger.TRACE) {
				logger.Trace.Printf("Calling topic '%s' with: %s", topic, params)
			}
			reflect.ValueOf(callback).Call(args)
		}
		s.dispatcher.Post(sendFn)
	}
	err := s.bus.Subscribe(string(topic), cb)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}
	s.markSubscribed(topic)
}

func (s *Broker) markSubscribed(topic api.Topic) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.topics[topic] = true
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := message
	if err != nil {
		formattedMessage = fmt.Sprintf("%s: %s", message, err.Error())
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}

func (s *Broker) Close() {
	s.mux.Lock()
	defer s.mux.Unlock()
	for topic := range s.topics {
		s.bus.Close(string(topic))
	}
	s.topics = map[api.Topic]bool{}
}
