// Shared helpers for planner CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mesh-intelligence/dayplan/internal/engine"
	"github.com/mesh-intelligence/dayplan/internal/service"
	"github.com/mesh-intelligence/dayplan/internal/store"
	"github.com/mesh-intelligence/dayplan/pkg/types"
)

// openService resolves the data directory, opens the SQLite store, and
// wires the command service over it. The caller must invoke the returned
// cleanup function.
func openService() (*service.Service, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	eng, err := engine.New(engineCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	clock := types.SystemClock()
	st, err := store.Open(dataDir, clock)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	svc := service.New(st, clock, eng)
	return svc, func() { st.Close() }, nil
}

// runCommand opens the service, executes one command for the current
// user, and prints the reply. Exits the process on failure.
func runCommand(name string, cmd service.Command) {
	svc, cleanup, err := openService()
	if err != nil {
		fmt.Fprintln(os.Stderr, name+":", err)
		os.Exit(exitSysError)
	}
	defer cleanup()

	reply, err := svc.Do(currentUser, cmd)
	if err != nil {
		exitCommandError(name, err)
	}
	printReply(reply)
}

// exitCommandError prints a short user-facing line for domain errors and
// exits 1; anything else is a system error and exits 2.
func exitCommandError(name string, err error) {
	if msg, ok := userMessage(err); ok {
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(exitUserError)
	}
	fmt.Fprintln(os.Stderr, name+":", err)
	os.Exit(exitSysError)
}

// userMessage maps domain sentinels to the short lines shown to the user.
func userMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, types.ErrDayAlreadyClosed):
		return "День уже закрыт.", true
	case errors.Is(err, types.ErrDayClosed):
		return "День закрыт. Открыть заново: planner reopen", true
	case errors.Is(err, types.ErrTaskNotFound):
		return "Нет задачи с таким номером.", true
	case errors.Is(err, types.ErrTaskDone):
		return "Эта задача уже отмечена.", true
	case errors.Is(err, types.ErrEmptyText):
		return "Текст задачи пустой.", true
	case errors.Is(err, types.ErrBacklogItemNotFound):
		return "В backlog нет пункта с таким номером.", true
	case errors.Is(err, types.ErrHabitNotFound):
		return "Нет такой привычки.", true
	case errors.Is(err, types.ErrHabitExists):
		return "Такая привычка уже есть.", true
	case errors.Is(err, types.ErrInvalidDate):
		return "Дата должна быть в формате ГГГГ-ММ-ДД.", true
	case errors.Is(err, types.ErrInvalidTime):
		return "Время должно быть в формате ЧЧ:ММ.", true
	}
	return "", false
}

// printReply writes the command outcome, honoring the --json flag.
func printReply(reply *service.Reply) {
	if flagJSON {
		out, err := json.MarshalIndent(reply, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal JSON:", err)
			os.Exit(exitSysError)
		}
		fmt.Println(string(out))
		return
	}
	fmt.Println(reply.Text)
}

// parseID parses a 1-based list id argument, exiting on bad input.
func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		fmt.Fprintf(os.Stderr, "invalid id %q (expected a positive number)\n", arg)
		os.Exit(exitUserError)
	}
	return id
}
