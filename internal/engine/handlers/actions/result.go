package actions

import (
	"fmt"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/engine/handlers"
)

// outcome builds the handler result: msg when applied, the reason otherwise.
func outcome(who string, res domain.Result, msg string) handlers.Result {
	if !res.IsApplied() {
		msg = fmt.Sprintf("%s: %s", who, res)
	}
	return handlers.Result{Msg: msg, Outcome: res}
}
