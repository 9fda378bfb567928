package engine

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"go.bug.st/serial"
)

// Trigger line assignments on the DLP-IO8-G. Line 1 is held high while the
// letter string is on screen, line 2 pulses once per response.
const (
	triggerLetters  = "1"
	triggerResponse = "2"
)

// DLPIO8G drives a DLP-IO8-G USB trigger box for EEG/physiology recording.
// Write failures are logged and otherwise ignored; a flaky trigger box must
// not end a session.
type DLPIO8G struct {
	port serial.Port
	log  hclog.Logger
}

// OpenTriggerBox connects to the device, checks that it answers a ping and
// switches it to binary line mode.
func OpenTriggerBox(device string, log hclog.Logger) (*DLPIO8G, error) {
	mode := &serial.Mode{
		BaudRate: 9600,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, err
	}

	// A silent device must not hang startup on the ping read.
	if err := port.SetReadTimeout(2 * time.Second); err != nil {
		port.Close()
		return nil, err
	}

	d := &DLPIO8G{port: port, log: log}
	if !d.Ping() {
		port.Close()
		return nil, fmt.Errorf("device did not respond to ping correctly")
	}

	// Binary mode
	if _, err := port.Write([]byte{0x5C}); err != nil {
		port.Close()
		return nil, err
	}

	return d, nil
}

// Ping sends the status request and checks for the device's 'Q' answer.
func (d *DLPIO8G) Ping() bool {
	if _, err := d.port.Write([]byte{0x27}); err != nil {
		return false
	}
	buf := make([]byte, 1)
	n, err := d.port.Read(buf)
	return err == nil && n == 1 && buf[0] == 'Q'
}

// LettersOn raises the stimulus line at letter onset.
func (d *DLPIO8G) LettersOn() {
	d.set(triggerLetters)
}

// LettersOff drops the stimulus line at letter offset.
func (d *DLPIO8G) LettersOff() {
	d.unset(triggerLetters)
}

// ResponsePulse raises the response line for a few milliseconds.
func (d *DLPIO8G) ResponsePulse() {
	d.set(triggerResponse)
	time.Sleep(5 * time.Millisecond)
	d.unset(triggerResponse)
}

func (d *DLPIO8G) set(lines string) {
	if _, err := d.port.Write([]byte(lines)); err != nil {
		d.log.Warn("trigger write failed", "lines", lines, "error", err)
	}
}

func (d *DLPIO8G) unset(lines string) {
	cmd := []byte(lines)
	for i := range cmd {
		switch cmd[i] {
		case '1':
			cmd[i] = 'Q'
		case '2':
			cmd[i] = 'W'
		case '3':
			cmd[i] = 'E'
		case '4':
			cmd[i] = 'R'
		case '5':
			cmd[i] = 'T'
		case '6':
			cmd[i] = 'Y'
		case '7':
			cmd[i] = 'U'
		case '8':
			cmd[i] = 'I'
		}
	}
	if _, err := d.port.Write(cmd); err != nil {
		d.log.Warn("trigger write failed", "lines", lines, "error", err)
	}
}

// Close drops both lines and releases the port.
func (d *DLPIO8G) Close() {
	if d.port != nil {
		d.unset(triggerLetters + triggerResponse)
		d.port.Close()
	}
}
