// claimflow runs the claims-management shell against a freshly generated
// in-memory dataset. It reads simple commands from stdin and renders the
// current screen as text; the live-update simulator mutates claims in the
// background while a session is active.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"claimflow/internal/audit"
	"claimflow/internal/authz/engine"
	claimservice "claimflow/internal/claim/service"
	"claimflow/internal/config"
	"claimflow/internal/export"
	"claimflow/internal/nav"
	"claimflow/internal/seed"
	"claimflow/internal/session"
	"claimflow/internal/simulator"
	"claimflow/internal/store"
	userdomain "claimflow/internal/user/domain"
	"claimflow/internal/views"
	"claimflow/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	if err := engine.HealthCheck(); err != nil {
		zl.Fatal("screen policy", zap.Error(err))
	}
	eval, err := engine.New(context.Background(), zl)
	if err != nil {
		zl.Fatal("screen policy", zap.Error(err))
	}

	var src rand.Source
	if cfg.RandSeed != 0 {
		src = rand.NewPCG(cfg.RandSeed, cfg.RandSeed>>1)
	}
	gen := seed.New(src)
	gen.PolicyCount = cfg.SeedPolicyCount
	gen.ClaimCount = cfg.SeedClaimCount
	gen.ActivityCount = cfg.SeedActivityCount

	st := store.New(gen.Generate())
	machine := nav.NewMachine()
	activity := audit.NewLogger(st, zl)
	claims := claimservice.New(st, activity)
	sim := simulator.New(st, simulator.Config{
		Interval:     cfg.Interval(),
		MutationRate: cfg.SimMutationRate,
	}, zl)
	sess := session.NewManager(st, machine, sim, activity, zl)
	defer sess.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		sess.Close()
		os.Exit(0)
	}()

	sh := &shell{store: st, nav: machine, eval: eval, claims: claims, sess: sess, log: zl}
	sh.run(os.Stdin)
}

// shell is the interactive command loop around the core components.
type shell struct {
	store  *store.Store
	nav    *nav.Machine
	eval   *engine.Evaluator
	claims *claimservice.Service
	sess   *session.Manager
	log    *zap.Logger
}

func (sh *shell) run(in *os.File) {
	sh.render()
	scanner := bufio.NewScanner(in)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !sh.dispatch(line) {
			return
		}
		fmt.Print("> ")
	}
}

// dispatch handles one command line. Returns false to exit the shell.
func (sh *shell) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "quit", "exit":
		sh.sess.Logout()
		return false
	case "help":
		fmt.Println("commands: login <role> | logout | nav <screen> [k=v ...] | submit k=v ... | edit <claimId> k=v ... | upload <claimId> <file> | export | quit")
	case "login":
		sh.login(args)
	case "logout":
		sh.sess.Logout()
		sh.render()
	case "nav":
		sh.navigate(args)
	case "submit":
		sh.submit(args)
	case "edit":
		sh.edit(args)
	case "upload":
		sh.upload(args)
	case "export":
		sh.export()
	default:
		fmt.Printf("unknown command %q (try help)\n", cmd)
	}
	return true
}

// render prints the current screen, gated through the Rego screen policy.
func (sh *shell) render() {
	v := sh.nav.Current()
	u := sh.sess.CurrentUser()
	if !sh.eval.CanOpen(context.Background(), u, v.Screen) {
		fmt.Print(views.AccessDenied(v))
		return
	}
	fmt.Print(views.Render(sh.store.Snapshot(), v, u, time.Now().UTC()))
}

func (sh *shell) login(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: login <role>")
		return
	}
	role := userdomain.Role(strings.ToUpper(args[0]))
	if !role.Valid() {
		fmt.Printf("unknown role %q\n", args[0])
		return
	}
	u, err := sh.sess.Login(role)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Logged in as %s (%s)\n", u.Name, u.Role.Label())
	sh.render()
}

func (sh *shell) navigate(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: nav <screen> [k=v ...]")
		return
	}
	screen := nav.Screen(strings.ToUpper(args[0]))
	if !screen.Valid() {
		fmt.Printf("unknown screen %q\n", args[0])
		return
	}
	sh.nav.Navigate(screen, parsePairs(args[1:]))
	sh.render()
}

func (sh *shell) submit(args []string) {
	in, err := parseClaimInput(parsePairs(args))
	if err != nil {
		fmt.Println(err)
		return
	}
	u := sh.sess.CurrentUser()
	c, err := sh.claims.Submit(u, in)
	var verr *claimservice.ValidationError
	if errors.As(err, &verr) {
		v := nav.View{Screen: nav.ScreenSubmitClaimForm, Params: map[string]string{}}
		fmt.Print(views.SubmitClaimForm(sh.store.Snapshot(), v, u, verr.Fields))
		return
	}
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Submitted %s\n", c.ClaimNumber)
	sh.nav.Navigate(nav.ScreenClaimsList, nil)
	sh.render()
}

func (sh *shell) edit(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: edit <claimId> k=v ...")
		return
	}
	claimID := args[0]
	in, err := parseClaimInput(parsePairs(args[1:]))
	if err != nil {
		fmt.Println(err)
		return
	}
	u := sh.sess.CurrentUser()
	c, err := sh.claims.Edit(u, claimID, in)
	var verr *claimservice.ValidationError
	switch {
	case errors.As(err, &verr):
		v := nav.View{Screen: nav.ScreenEditClaimForm, Params: map[string]string{"claimId": claimID}}
		fmt.Print(views.EditClaimForm(sh.store.Snapshot(), v, verr.Fields))
	case errors.Is(err, claimservice.ErrClaimNotFound):
		v := nav.View{Screen: nav.ScreenClaimDetail, Params: map[string]string{"claimId": claimID}}
		fmt.Print(views.NotFound(v, "Claim"))
	case err != nil:
		fmt.Println(err)
	default:
		fmt.Printf("Updated %s\n", c.ClaimNumber)
		sh.nav.Navigate(nav.ScreenClaimDetail, map[string]string{"claimId": c.ID})
		sh.render()
	}
}

func (sh *shell) upload(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: upload <claimId> <file>")
		return
	}
	doc, err := sh.claims.AttachDocument(sh.sess.CurrentUser(), args[0], args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Attached %s (%s)\n", doc.Name, doc.Kind)
}

func (sh *shell) export() {
	out, err := export.Claims(sh.store.Snapshot(), sh.sess.CurrentUser(), time.Now().UTC())
	if err != nil {
		sh.log.Error("export failed", zap.Error(err))
		return
	}
	fmt.Println(string(out))
}

func parsePairs(args []string) map[string]string {
	params := map[string]string{}
	for _, a := range args {
		if k, v, ok := strings.Cut(a, "="); ok {
			params[k] = v
		}
	}
	return params
}

func parseClaimInput(pairs map[string]string) (claimservice.ClaimInput, error) {
	in := claimservice.ClaimInput{
		PolicyID: pairs["policyId"],
		Notes:    pairs["notes"],
	}
	if raw := pairs["incidentDate"]; raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return in, fmt.Errorf("incidentDate: expected YYYY-MM-DD: %w", err)
		}
		in.IncidentDate = t
	}
	if raw := pairs["amountRequested"]; raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return in, fmt.Errorf("amountRequested: expected integer: %w", err)
		}
		in.AmountRequested = n
	}
	return in, nil
}
