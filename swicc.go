package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"swicc/ierrors"
	"swicc/internal/command"
	"swicc/internal/dashboard"
	"swicc/internal/dump"
	"swicc/internal/engine"
	"swicc/internal/hid"
	"swicc/internal/indicator"
	"swicc/internal/transport"
	"swicc/logger"
	"swicc/version"
)

func main() {
	var mode string
	if len(os.Args) > 1 {
		mode = strings.ToUpper(os.Args[1])
	}

	var err error
	switch mode {
	default:
		mode = "RUN"
		err = run(mode, os.Args[1:])
	case "RUN":
		err = run(mode, os.Args[2:])
	case "DUMP":
		err = runDump(mode, os.Args[2:])
	case "VERSION":
		err = showVersion(mode, os.Args[2:])
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", mode, err)
		os.Exit(20)
	}
}

func showVersion(mode string, args []string) error {
	var revision bool

	flgs := flag.NewFlagSet(mode, flag.ExitOnError)
	flgs.BoolVar(&revision, "v", false, "display build revision, if any")
	if err := flgs.Parse(args); err != nil {
		return ierrors.Errorf(ierrors.FlagError, err)
	}

	ver, rev, _ := version.Version()
	fmt.Println(ver)
	if revision && rev != "" {
		fmt.Println(rev)
	}
	return nil
}

// run is the main execution mode: it brings up the supervisor, hands its
// command stream to a serial or console transport, and (optionally) starts
// the dashboard. The HID side and indicator run off whatever the
// supervisor publishes, independent of which transport carries commands.
func run(mode string, args []string) error {
	var device string
	var dashboardAddr string
	var useConsole bool
	var frameDelay uint

	flgs := flag.NewFlagSet(mode, flag.ExitOnError)
	flgs.StringVar(&device, "device", "", "serial device to read commands from (e.g. /dev/ttyACM0); empty uses the interactive console")
	flgs.StringVar(&dashboardAddr, "dashboard", "", "address to serve the statsview dashboard on (e.g. :8899); empty disables it")
	flgs.BoolVar(&useConsole, "console", false, "force the interactive console even when -device is set")
	flgs.UintVar(&frameDelay, "framedelay", 10000, "initial vsync-to-change delay in microseconds")
	if err := flgs.Parse(args); err != nil {
		return ierrors.Errorf(ierrors.FlagError, err)
	}

	usb := hid.NewMountTracker()
	sup := engine.NewSupervisor(usb)
	sup.Start()
	defer sup.Stop()

	if frameDelay > 0 && frameDelay <= 0xFFFF {
		sup.Execute("VSD", fmt.Sprintf("%04X", frameDelay))
	}

	if dashboardAddr != "" {
		db := dashboard.New(dashboardAddr, sup)
		go db.Start()
		defer db.Stop()
		logger.Logf(logger.Allow, "swicc", "dashboard listening on %s", dashboardAddr)
	}

	line, cleanup, err := openLine(device, useConsole)
	if err != nil {
		return err
	}
	defer cleanup()

	go runIndicatorLoop(sup, usb)

	parser := command.NewParser(sup)
	return parser.RunLoop(line, line)
}

func openLine(device string, forceConsole bool) (transport.Line, func(), error) {
	if device != "" && !forceConsole {
		line, err := transport.OpenSerial(device)
		if err != nil {
			return nil, nil, err
		}
		return line, func() { line.Close() }, nil
	}

	console, err := transport.OpenConsole()
	if err != nil {
		return nil, nil, ierrors.Errorf(ierrors.TransportOpenError, "console", err)
	}
	return console, func() { console.Close() }, nil
}

// runIndicatorLoop renders the status LED's heartbeat at the indicator
// package's minimum refresh rate, discarding the color since no physical
// NeoPixel exists on a host build.
func runIndicatorLoop(sup *engine.Supervisor, usb *hid.MountTracker) {
	sink := indicator.NullSink{}
	interval := time.Second / indicator.RefreshHz

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sink.Show(indicator.Render(sup, usb))
		case <-stop:
			return
		}
	}
}

func runDump(mode string, args []string) error {
	flgs := flag.NewFlagSet(mode, flag.ExitOnError)
	if err := flgs.Parse(args); err != nil {
		return ierrors.Errorf(ierrors.FlagError, err)
	}

	usb := hid.NewMountTracker()
	sup := engine.NewSupervisor(usb)
	dump.Write(os.Stdout, sup, usb)
	return nil
}
