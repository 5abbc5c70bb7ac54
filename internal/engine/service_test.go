package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/engine/handlers"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/api"
)

func command(action, payload string) api.Command {
	cmd := api.Command{Action: action}
	if payload != "" {
		cmd.Payload = json.RawMessage(payload)
	}
	return cmd
}

func TestService_Execute(t *testing.T) {
	s := NewService(NewGame())
	s.Join("Bob")

	tests := []struct {
		name    string
		cmd     api.Command
		outcome domain.Result
	}{
		{"wound", command("WOUND", `{"survivor":"Bob"}`), domain.Applied},
		{"lowercase action", command("equip", `{"survivor":"Bob","item":"Knife","slot":"inHand"}`), domain.Applied},
		{"gain", command("GAIN", `{"survivor":"Bob","amount":6}`), domain.Applied},
		{"level up", command("LEVEL_UP", `{"survivor":"Bob"}`), domain.Applied},
		{"level up again", command("LEVEL_UP", `{"survivor":"Bob"}`), domain.IgnoredUnchanged},
		{"game level up", command("GAME_LEVEL_UP", ""), domain.Applied},
		{"act", command("ACT", `{"survivor":"Bob"}`), domain.Applied},
		{"turn", command("START_TURN", ""), domain.Applied},
		{"duplicate join", command("JOIN", `{"survivor":"Bob"}`), domain.IgnoredDuplicateName},
		{"status", command("STATUS", ""), domain.Applied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Execute(tt.cmd)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if res.Outcome != tt.outcome {
				t.Errorf("Expected %s, got %s (%s)", tt.outcome, res.Outcome, res.Msg)
			}
		})
	}

	if s.Game.Level() != domain.LevelYellow {
		t.Errorf("Expected party level yellow, got %s", s.Game.Level())
	}
}

func TestService_ExecuteErrors(t *testing.T) {
	s := NewService(NewGame())
	s.Join("Bob")

	tests := []struct {
		name string
		cmd  api.Command
		want error
	}{
		{"unknown action", command("FLY", `{"survivor":"Bob"}`), ErrUnknownAction},
		{"unknown survivor", command("WOUND", `{"survivor":"Zed"}`), handlers.ErrUnknownSurvivor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Execute(tt.cmd); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	invalid := []api.Command{
		command("WOUND", `{"survivor":""}`),
		command("EQUIP", `{"survivor":"Bob","item":"Knife","slot":"pocket"}`),
		command("GAIN", `{"survivor":"Bob","amount":-1}`),
		command("WOUND", `not json`),
	}
	for _, cmd := range invalid {
		if _, err := s.Execute(cmd); err == nil {
			t.Errorf("Expected %s %s to be rejected", cmd.Action, cmd.Payload)
		}
	}
}

func TestService_Join(t *testing.T) {
	s := NewService(NewGame())
	s.Join("Bob", " ", "", " Alice ", "Bob")

	roster := s.Game.Survivors()
	if len(roster) != 2 {
		t.Fatalf("Expected 2 survivors, got %d", len(roster))
	}
	if roster[1].Name() != "Alice" {
		t.Errorf("Expected trimmed name Alice, got %q", roster[1].Name())
	}
}

func TestService_Run(t *testing.T) {
	script := strings.Join([]string{
		`# Bob's last stand`,
		`{"action":"JOIN","payload":{"survivor":"Bob"}}`,
		``,
		`{"action":"WOUND","payload":{"survivor":"Bob"}}`,
		`{"action":"EQUIP","payload":{"survivor":"Bob","item":"Knife","slot":"inReserve"}}`,
		`{"action":"GAIN","payload":{"survivor":"Bob","amount":6}}`,
		`{"action":"LEVEL_UP","payload":{"survivor":"Bob"}}`,
		`{"action":"GAME_LEVEL_UP"}`,
		`this line is garbage`,
		`{"action":"DANCE"}`,
		`{"action":"WOUND","payload":{"survivor":"Bob"}}`,
		`{"action":"WOUND","payload":{"survivor":"Bob"}}`,
		`{"action":"UPDATE","payload":{"survivor":"Bob"}}`,
		`{"action":"STATUS"}`,
	}, "\n")

	s := NewService(NewGame())
	var out bytes.Buffer
	if err := s.Run(strings.NewReader(script), &out); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{
		"Game started",
		"[Bob]: Joined the game",
		"[Bob]: Took a wound",
		"[Bob]: Equipped Knife",
		"[Bob]: Leveled up to yellow",
		"[Zombicide]: Leveled up to yellow",
		"[Bob]: Took a wound",
		"[Bob]: Died",
		"[Zombicide]: Game over",
	}
	logs := s.Game.Logs()
	if strings.Join(logs, "\n") != strings.Join(want, "\n") {
		t.Errorf("Unexpected log.\nExpected: %v\nGot:      %v", want, logs)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 10 {
		t.Errorf("Expected 10 result lines, got %d: %q", len(lines), lines)
	}
	if last := lines[len(lines)-1]; !strings.Contains(last, "game over: true") {
		t.Errorf("Expected final status to report game over, got %q", last)
	}
}

func TestService_RunLongLine(t *testing.T) {
	long := `{"action":"JOIN","payload":{"survivor":"` + strings.Repeat("z", 200*1024) + `"}}`
	script := strings.Join([]string{
		long,
		`{"action":"JOIN","payload":{"survivor":"Bob"}}`,
		`{"action":"WOUND","payload":{"survivor":"Bob"}}`,
	}, "\n")

	s := NewService(NewGame())
	if err := s.Run(strings.NewReader(script), nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(s.Game.Survivors()) != 2 {
		t.Errorf("Expected both survivors to join, got %d", len(s.Game.Survivors()))
	}
	if logs := s.Game.Logs(); logs[len(logs)-1] != "[Bob]: Took a wound" {
		t.Errorf("Expected the script to reach Bob's wound, got %v", logs[len(logs)-1])
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestService_RunReadError(t *testing.T) {
	s := NewService(NewGame())
	if err := s.Run(failingReader{}, nil); err == nil || !strings.Contains(err.Error(), "read script") {
		t.Errorf("Expected a read error, got %v", err)
	}
}
