package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(anonymous) >"
	}
	profile, ok, err := a.session.Profile(context.Background())
	if err != nil || !ok {
		return ">"
	}
	return fmt.Sprintf("(%s) >", profile.DisplayName())
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to fdatrack CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
