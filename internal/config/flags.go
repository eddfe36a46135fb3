// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name). Unset flags stay at their zero value so lower-priority sources can
// fill them during the merge.
//
// Flags:
//
//	-endpoint server base URL
//	-account / -app target account and application
//	-server-game-port advertised game port
//	-driver SDK driver name
//	-admin admin base URL
//	-admin-timeout admin request timeout (e.g. "5s")
//	-time-slice / -idle dispatcher pump timings
//	-worker worker name
//	-n iterations
//	-w concurrent workers per iteration
//	-ramp-up workers started per second
//	-worker-timeout single worker run timeout
//	-messages RPCs per messages worker
//	-dashboard enable terminal dashboard
//	-scenarios comma separated scenario names
//	-scenario-timeout single scenario timeout
//	-d database DSN
//	-db-driver database driver (sqlite3 or pgx)
//	-metrics metrics listen address in format [host]:[port]
//	-trace enable stdout tracing
//	-log-level zerolog level
//	-client-log-dir per client log directory
//	-ccu-limit loopback CCU limit
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("gameflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfg StructuredConfig
	var metricsAddress NetAddress
	var scenarios string

	fs.StringVar(&cfg.Target.Endpoint, "endpoint", "", "Server base URL")
	fs.StringVar(&cfg.Target.Account, "account", "", "Account")
	fs.StringVar(&cfg.Target.Application, "app", "", "Application")
	fs.IntVar(&cfg.Target.ServerGamePort, "server-game-port", 0, "Advertised game port")
	fs.StringVar(&cfg.Target.Driver, "driver", "", "SDK driver")

	fs.StringVar(&cfg.Admin.Address, "admin", "", "Admin base URL")
	fs.DurationVar(&cfg.Admin.RequestTimeout, "admin-timeout", 0, "Admin request timeout (e.g., 5s)")

	fs.DurationVar(&cfg.Dispatch.TimeSlice, "time-slice", 0, "Dispatcher time slice")
	fs.DurationVar(&cfg.Dispatch.Idle, "idle", 0, "Dispatcher idle sleep")

	fs.StringVar(&cfg.Stress.Worker, "worker", "", "Worker name")
	fs.IntVar(&cfg.Stress.Iterations, "n", 0, "Iterations")
	fs.IntVar(&cfg.Stress.ConcurrentWorkers, "w", 0, "Concurrent workers per iteration")
	fs.Float64Var(&cfg.Stress.RampUp, "ramp-up", 0, "Workers started per second")
	fs.DurationVar(&cfg.Stress.WorkerTimeout, "worker-timeout", 0, "Worker run timeout")
	fs.IntVar(&cfg.Stress.Messages, "messages", 0, "RPCs per messages worker")
	fs.BoolVar(&cfg.Stress.Dashboard, "dashboard", false, "Enable terminal dashboard")

	fs.StringVar(&scenarios, "scenarios", "", "Comma separated scenario names")
	fs.DurationVar(&cfg.Scenario.Timeout, "scenario-timeout", 0, "Scenario timeout")

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver")

	fs.Var(&metricsAddress, "metrics", "Metrics net address host:port")
	fs.BoolVar(&cfg.Tracing.Enabled, "trace", false, "Enable tracing")

	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.ClientDir, "client-log-dir", "", "Per client log directory")

	fs.IntVar(&cfg.Loopback.CCULimit, "ccu-limit", 0, "Loopback CCU limit")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Metrics.Address = metricsAddress.String()
	if scenarios != "" {
		for _, name := range strings.Split(scenarios, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Scenario.Names = append(cfg.Scenario.Names, name)
			}
		}
	}

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

