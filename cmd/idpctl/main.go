/*
Copyright 2025 Piotr Janik.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command idpctl sends user pool requests read from JSON or YAML documents
// and manages users from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cogniteo/idp-sdk-go/internal/config"
	"github.com/cogniteo/idp-sdk-go/internal/logging"
	"github.com/cogniteo/idp-sdk-go/pkg/cognito"
	"github.com/cogniteo/idp-sdk-go/pkg/model"
	"github.com/cogniteo/idp-sdk-go/pkg/userpool"
)

// clientFactory creates the client used by the commands.
type clientFactory func(ctx context.Context, opts cognito.Options) (*cognito.AWSClient, error)

type cli struct {
	app       *kingpin.Application
	cfg       *config.Config
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory

	metricsFile *string

	// Set when the pool is chosen on the command line rather than the
	// environment.
	poolIDFlag   bool
	poolNameFlag bool

	operationsCmd *kingpin.CmdClause

	invokeCmd    *kingpin.CmdClause
	invokeOp     *string
	invokeInput  *string
	invokeOutput *string

	usersListCmd    *kingpin.CmdClause
	usersListFilter *string
	usersListLimit  *int32

	usersEnsureCmd   *kingpin.CmdClause
	usersEnsureName  *string
	usersEnsureAttrs *map[string]string
	usersEnsureQuiet *bool

	usersDeleteCmd  *kingpin.CmdClause
	usersDeleteName *string

	poolsListCmd *kingpin.CmdClause

	poolsResolveCmd  *kingpin.CmdClause
	poolsResolveName *string
}

func newCLI(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer, newClient clientFactory) *cli {
	c := &cli{
		app:       kingpin.New("idpctl", "Send user pool requests and manage users."),
		cfg:       cfg,
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		newClient: newClient,
	}
	app := c.app
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	app.Flag("region", "AWS region.").Default(cfg.Region).StringVar(&cfg.Region)
	app.Flag("profile", "Shared configuration profile.").Default(cfg.Profile).StringVar(&cfg.Profile)
	app.Flag("endpoint", "Service endpoint override.").Default(cfg.Endpoint).StringVar(&cfg.Endpoint)
	app.Flag("user-pool-id", "Pool used by requests that do not name one.").
		Default(cfg.UserPoolID).IsSetByUser(&c.poolIDFlag).StringVar(&cfg.UserPoolID)
	app.Flag("user-pool-name", "Name of the pool used by requests that do not name one.").
		Default(cfg.UserPoolName).IsSetByUser(&c.poolNameFlag).StringVar(&cfg.UserPoolName)
	app.Flag("max-attempts", "Maximum attempts per request.").Default(strconv.Itoa(cfg.MaxAttempts)).IntVar(&cfg.MaxAttempts)
	app.Flag("cache-ttl", "How long resolved pool names are cached.").Default(cfg.CacheTTL.String()).DurationVar(&cfg.CacheTTL)
	app.Flag("log-level", "Log level.").Default(cfg.LogLevel).EnumVar(&cfg.LogLevel, "debug", "info", "warn", "error")
	app.Flag("log-format", "Log format.").Default(cfg.LogFormat).EnumVar(&cfg.LogFormat, "console", "json")
	c.metricsFile = app.Flag("metrics-file", "Write client metrics to this file in the text exposition format on exit.").String()

	c.operationsCmd = app.Command("operations", "List the operations accepted by invoke.")

	c.invokeCmd = app.Command("invoke", "Send one request read from a JSON or YAML document.")
	c.invokeOp = c.invokeCmd.Arg("operation", "Operation name, see operations.").Required().HintOptions(operationNames()...).String()
	c.invokeInput = c.invokeCmd.Flag("input", "Request document, - for stdin.").Short('i').Default("-").String()
	c.invokeOutput = c.invokeCmd.Flag("output", "Output format.").Short('o').Default("json").Enum("json", "yaml")

	users := app.Command("users", "Manage the users of the pool.")
	c.usersListCmd = users.Command("list", "List all users.")
	c.usersListFilter = c.usersListCmd.Flag("filter", `Filter expression, e.g. email ^= "jane".`).String()
	c.usersListLimit = c.usersListCmd.Flag("page-size", "Users fetched per request.").Default("60").Int32()

	c.usersEnsureCmd = users.Command("ensure", "Create a user unless it already exists.")
	c.usersEnsureName = c.usersEnsureCmd.Arg("username", "Username.").Required().String()
	c.usersEnsureAttrs = c.usersEnsureCmd.Flag("attribute", "Attribute as name=value, repeatable.").Short('a').StringMap()
	c.usersEnsureQuiet = c.usersEnsureCmd.Flag("suppress-message", "Do not send the welcome message.").Default("true").Bool()

	c.usersDeleteCmd = users.Command("delete", "Delete a user. A missing user is not an error.")
	c.usersDeleteName = c.usersDeleteCmd.Arg("username", "Username.").Required().String()

	pools := app.Command("pools", "Inspect user pools.")
	c.poolsListCmd = pools.Command("list", "List all user pools.")
	c.poolsResolveCmd = pools.Command("resolve", "Print the ID of the pool with the given name.")
	c.poolsResolveName = c.poolsResolveCmd.Arg("name", "Pool name.").Required().String()

	return c
}

func main() {
	envFile := os.Getenv(config.EnvFile)
	if envFile == "" {
		envFile = config.DefaultEnvFile
	}
	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "idpctl:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := newCLI(cfg, os.Stdin, os.Stdout, os.Stderr, cognito.NewAWSClient)
	if err := c.run(ctx, os.Args[1:]); err != nil {
		stop()
		c.app.Fatalf("%s", err)
	}
}

func (c *cli) run(ctx context.Context, args []string) error {
	cmd, err := c.app.Parse(args)
	if err != nil {
		return err
	}
	// A pool flag replaces a pool of the other kind taken from the environment.
	switch {
	case c.poolNameFlag && !c.poolIDFlag:
		c.cfg.UserPoolID = ""
	case c.poolIDFlag && !c.poolNameFlag:
		c.cfg.UserPoolName = ""
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	opts := c.cfg.LoggingOptions()
	opts.Output = c.stderr
	log, err := logging.New(opts)
	if err != nil {
		return err
	}

	if cmd == c.operationsCmd.FullCommand() {
		for _, name := range operationNames() {
			fmt.Fprintln(c.stdout, name)
		}
		return nil
	}

	reg := prometheus.NewRegistry()
	if *c.metricsFile != "" {
		defer func() {
			if err := prometheus.WriteToTextfile(*c.metricsFile, reg); err != nil {
				log.Error(err, "unable to write metrics", "file", *c.metricsFile)
			}
		}()
	}

	client, err := c.client(ctx, log, reg)
	if err != nil {
		return err
	}

	switch cmd {
	case c.invokeCmd.FullCommand():
		return c.invoke(ctx, client)
	case c.usersListCmd.FullCommand():
		return c.listUsers(ctx, client)
	case c.usersEnsureCmd.FullCommand():
		return c.ensureUser(ctx, client)
	case c.usersDeleteCmd.FullCommand():
		return cognito.DeleteUserIfExists(ctx, client, new(model.AdminDeleteUserInput).SetUsername(*c.usersDeleteName))
	case c.poolsListCmd.FullCommand():
		return c.listPools(ctx, client)
	case c.poolsResolveCmd.FullCommand():
		id, err := client.ResolveUserPoolID(ctx, *c.poolsResolveName)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, id)
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (c *cli) client(ctx context.Context, log logr.Logger, reg prometheus.Registerer) (*cognito.AWSClient, error) {
	client, err := c.newClient(ctx, c.cfg.AWSOptions(log, reg))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	if c.cfg.UserPoolName != "" {
		if err := client.UseUserPoolName(ctx, c.cfg.UserPoolName); err != nil {
			return nil, err
		}
	}
	return client, nil
}

func (c *cli) invoke(ctx context.Context, client *cognito.AWSClient) error {
	op, ok := lookupOperation(*c.invokeOp)
	if !ok {
		return fmt.Errorf("unknown operation %q", *c.invokeOp)
	}

	var data []byte
	var err error
	if *c.invokeInput == "-" {
		data, err = io.ReadAll(c.stdin)
	} else {
		data, err = os.ReadFile(*c.invokeInput)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	in, err := decodeInput(op, data)
	if err != nil {
		return err
	}
	out, err := op.call(ctx, client, in)
	if err != nil {
		return err
	}

	b, err := encodeOutput(out, *c.invokeOutput)
	if err != nil {
		return fmt.Errorf("failed to encode %s output: %w", op.name, err)
	}
	_, err = c.stdout.Write(b)
	return err
}

func (c *cli) listUsers(ctx context.Context, client *cognito.AWSClient) error {
	in := new(model.ListUsersInput).SetLimit(*c.usersListLimit)
	if *c.usersListFilter != "" {
		in.SetFilter(*c.usersListFilter)
	}
	users, err := cognito.ListAllUsers(ctx, client, in)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tEMAIL\tSTATUS\tENABLED")
	for i := range users {
		u := userpool.UserFromModel(&users[i])
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", u.Username, u.Email, u.Status, u.Enabled)
	}
	return w.Flush()
}

func (c *cli) ensureUser(ctx context.Context, client *cognito.AWSClient) error {
	in := new(model.AdminCreateUserInput).SetUsername(*c.usersEnsureName)
	for _, name := range slices.Sorted(maps.Keys(*c.usersEnsureAttrs)) {
		in.AppendUserAttributes(*new(model.AttributeType).SetName(name).SetValue((*c.usersEnsureAttrs)[name]))
	}
	if *c.usersEnsureQuiet {
		in.SetMessageAction(model.MessageActionTypeSuppress)
	}

	user, err := cognito.EnsureUser(ctx, client, in)
	if err != nil {
		return err
	}
	b, err := encodeOutput(user, "yaml")
	if err != nil {
		return err
	}
	_, err = c.stdout.Write(b)
	return err
}

func (c *cli) listPools(ctx context.Context, client *cognito.AWSClient) error {
	pools, err := cognito.ListAllUserPools(ctx, client)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS")
	for _, p := range pools {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.GetId(), p.GetName(), p.GetStatus())
	}
	return w.Flush()
}
