package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App type satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	SetPassword(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Me(ctx context.Context, args []string) error
	Students(ctx context.Context, args []string) error
	Tutors(ctx context.Context, args []string) error
	Sessions(ctx context.Context, args []string) error
	Notices(ctx context.Context, args []string) error
	AddNotice(ctx context.Context, args []string) error
	Stage(ctx context.Context, args []string) error
	Constancia(ctx context.Context, args []string) error
	Referral(ctx context.Context, args []string) error
	ReportPDF(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	ResetTemplate(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login <alumno|tutor|admin|psicologia|ciencias_basicas|jefatura_academica>, set-password <alumno|tutor>, exit"
	helpLoggedIn  = "Available commands: me, students, tutors, sessions, notices, notice-add, stage, " +
		"constancia, referral, report-pdf, upload, reset-template, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command, the rest are its arguments. Command
// errors are printed and the loop goes on. It returns on EOF or on
// "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tutorias%s> ", prefixed(statusFn())))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
		case "login":
			cmdErr = a.Login(ctx, args)
		case "set-password":
			cmdErr = a.SetPassword(ctx, args)
		case "logout":
			cmdErr = a.Logout(ctx, args)
		case "me":
			cmdErr = a.Me(ctx, args)
		case "students":
			cmdErr = a.Students(ctx, args)
		case "tutors":
			cmdErr = a.Tutors(ctx, args)
		case "sessions":
			cmdErr = a.Sessions(ctx, args)
		case "notices":
			cmdErr = a.Notices(ctx, args)
		case "notice-add":
			cmdErr = a.AddNotice(ctx, args)
		case "stage":
			cmdErr = a.Stage(ctx, args)
		case "constancia":
			cmdErr = a.Constancia(ctx, args)
		case "referral":
			cmdErr = a.Referral(ctx, args)
		case "report-pdf":
			cmdErr = a.ReportPDF(ctx, args)
		case "upload":
			cmdErr = a.Upload(ctx, args)
		case "reset-template":
			cmdErr = a.ResetTemplate(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", describe(cmdErr))
		}
		if err != nil {
			return
		}
	}
}

func prefixed(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
