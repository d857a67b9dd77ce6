package api

type ProgressReporter interface {
	Update(name string, current int, total int)
	Error(message string, err error)
}

// SenderProgressReporter forwards progress to the GUI through the broker.
type SenderProgressReporter struct {
	sender Sender
}

func NewSenderProgressReporter(sender Sender) *SenderProgressReporter {
	return &SenderProgressReporter{
		sender: sender,
	}
}

func (s *SenderProgressReporter) Update(name string, current int, total int) {
	s.sender.SendCommandToTopic(ProcessStatusUpdated, &UpdateProgressCommand{
		Name:      name,
		Current:   current,
		Total:     total,
		CanCancel: false,
		Modal:     false,
	})
}

func (s *SenderProgressReporter) Error(message string, err error) {
	s.sender.SendError(message, err)
}
