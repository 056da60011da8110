// Command client is a thin CLI for the Notehub API.
//
// Usage:
//
//	client -a http://localhost:8080 signup <username> <email>
//	client -a http://localhost:8080 signin <username-or-email>
//	client [-t token] me | notes | note <id> | add <content> | update <id> <content> | delete <id>
//
// The session token printed by signup/signin can be passed with -t or the
// NOTEHUB_TOKEN environment variable.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alexsk87/notehub/internal/client"
	"golang.org/x/term"
)

func main() {
	addr := flag.String("a", "http://localhost:8080", "API base URL")
	token := flag.String("t", os.Getenv("NOTEHUB_TOKEN"), "session token")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: client [-a url] [-t token] <signup|signin|me|notes|note|add|update|delete> [args]")
		os.Exit(2)
	}

	ctx := context.Background()
	c := client.New(*addr, *token)

	if err := run(ctx, c, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, args []string) error {
	switch cmd, rest := args[0], args[1:]; cmd {

	case "signup":
		if len(rest) != 2 {
			return fmt.Errorf("usage: signup <username> <email>")
		}
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		token, err := c.SignUp(ctx, rest[0], rest[1], password)
		if err != nil {
			return err
		}
		fmt.Println(token)

	case "signin":
		if len(rest) != 1 {
			return fmt.Errorf("usage: signin <username-or-email>")
		}
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		token, err := c.SignIn(ctx, rest[0], password)
		if err != nil {
			return err
		}
		fmt.Println(token)

	case "me":
		u, err := c.Me(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.AvatarURL)

	case "notes":
		all, err := c.Notes(ctx)
		if err != nil {
			return err
		}
		for _, n := range all {
			fmt.Printf("%s\t%s\n", n.ID, n.Content)
		}

	case "note":
		if len(rest) != 1 {
			return fmt.Errorf("usage: note <id>")
		}
		n, err := c.Note(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\t(author %s, updated %s)\n", n.ID, n.Content, n.AuthorID, n.UpdatedAt.Format("2006-01-02 15:04"))

	case "add":
		if len(rest) == 0 {
			return fmt.Errorf("usage: add <content>")
		}
		n, err := c.NewNote(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		fmt.Println(n.ID)

	case "update":
		if len(rest) < 2 {
			return fmt.Errorf("usage: update <id> <content>")
		}
		n, err := c.UpdateNote(ctx, rest[0], strings.Join(rest[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", n.ID, n.Content)

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: delete <id>")
		}
		if err := c.DeleteNote(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Println("deleted")

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	return nil
}

// readPassword prompts without echo when stdin is a terminal and falls back
// to a plain line read otherwise (pipes, tests).
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
