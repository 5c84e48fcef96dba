// cmd/joycal/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tamzrod/joycal/internal/calibration"
	"github.com/tamzrod/joycal/internal/config"
	"github.com/tamzrod/joycal/internal/joycon"
	"github.com/tamzrod/joycal/internal/poller"
)

func main() {
	cfgPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	// --------------------
	// Load + validate config
	// --------------------

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		if err := config.Validate(loaded); err != nil {
			log.Fatalf("config validation failed: %v", err)
		}
		config.Normalize(loaded)
		cfg = loaded
	}

	formula, err := calibration.ParseDeadzoneFormula(cfg.Calibrator.DeadzoneFormula)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// --------------------
	// Connect
	// --------------------

	sess, err := joycon.Connect()
	if err != nil {
		log.Fatalf("connect failed: %v", err)
	}
	defer sess.Close()

	log.Printf("connected: %s", sess.Identity())
	info, err := sess.ReadDeviceInfo()
	if err != nil {
		log.Printf("device info unavailable: %v", err)
	} else {
		log.Printf("firmware %s, mac %s", info.Firmware, info.MAC)
	}

	// --------------------
	// Build wizard + poller
	// --------------------

	wiz, err := calibration.New(calibration.Config{
		Formula:      formula,
		OuterPadding: uint16(*cfg.Calibrator.OuterPadding),
	}, sess)
	if err != nil {
		log.Fatalf("wizard build failed: %v", err)
	}
	if err := wiz.Connect(); err != nil {
		log.Fatalf("wizard: %v", err)
	}

	p, err := poller.New(poller.Config{
		Interval: time.Duration(cfg.Calibrator.PollIntervalMs) * time.Millisecond,
	}, sess)
	if err != nil {
		log.Fatalf("poller build failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- strings.TrimSpace(sc.Text())
		}
	}()

	// --------------------
	// Wizard flow
	// --------------------

	fmt.Println("Release both sticks, then press Enter to begin.")
	waitLine(lines)

	if err := wiz.StartCalibration(); err != nil {
		log.Fatalf("start calibration: %v", err)
	}

	samples := make(chan poller.Result)
	go p.Run(ctx, samples)

	runPhase(wiz, samples, lines,
		"Wiggle each stick gently around its rest position, then press Enter.")
	if err := wiz.Advance(); err != nil {
		log.Fatalf("advance: %v", err)
	}

	runPhase(wiz, samples, lines,
		"Rotate each stick slowly around its full range a few times, then press Enter.")
	if err := wiz.Advance(); err != nil {
		log.Fatalf("advance: %v", err)
	}

	fmt.Println("Apply an outer deadzone? Shrinks the stored range slightly so full deflection never undershoots. [y/N]")
	enable := strings.EqualFold(waitLine(lines), "y")
	if err := wiz.ChooseOuterDeadzone(enable); err != nil {
		log.Fatalf("outer deadzone: %v", err)
	}

	review(wiz)
	fmt.Println("Write this calibration to the controller's flash? [y/N]")
	if !strings.EqualFold(waitLine(lines), "y") {
		log.Println("aborted, nothing written")
		return
	}

	// Commit owns the device from here.
	cancel()
	if err := wiz.Commit(); err != nil {
		log.Fatalf("calibration write failed: %v", err)
	}
	log.Println("calibration written")
}

// runPhase renders live readings and feeds the wizard until the user
// presses Enter.
func runPhase(wiz *calibration.Wizard, samples <-chan poller.Result, lines <-chan string, prompt string) {
	fmt.Println(prompt)
	id := wiz.Identity()
	for {
		select {
		case res := <-samples:
			if res.Err != nil {
				continue
			}
			wiz.Observe(res.Sample)
			fmt.Printf("\r%s ", gaugeLine(id, res.Sample))
		case <-lines:
			fmt.Println()
			return
		}
	}
}

func waitLine(lines <-chan string) string {
	s, ok := <-lines
	if !ok {
		return ""
	}
	return s
}

func gaugeLine(id joycon.Identity, s joycon.StickSample) string {
	var parts []string
	if id.HasLeftStick() {
		parts = append(parts, fmt.Sprintf("L %03X/%03X", s.LX, s.LY))
	}
	if id.HasRightStick() {
		parts = append(parts, fmt.Sprintf("R %03X/%03X", s.RX, s.RY))
	}
	return strings.Join(parts, "  ")
}

func review(wiz *calibration.Wizard) {
	left, right := wiz.Results()
	leftDZ, rightDZ := wiz.Deadzones()
	last := wiz.LastSample()
	id := wiz.Identity()

	if id.HasLeftStick() {
		printStick("left", left, leftDZ, last.LX, last.LY)
	}
	if id.HasRightStick() {
		printStick("right", right, rightDZ, last.RX, last.RY)
	}
	if wiz.OuterDeadzone() {
		fmt.Println("outer deadzone: enabled")
	}
}

func printStick(name string, c joycon.StickCalibration, deadzone, rawX, rawY uint16) {
	fmt.Printf("%s stick: x [%03X  %03X  %03X]  y [%03X  %03X  %03X]  deadzone %03X\n",
		name, c.XMin, c.XCenter, c.XMax, c.YMin, c.YCenter, c.YMax, deadzone)
	fmt.Printf("  calibrated position now: x=%.2f y=%.2f\n",
		calibration.Remap(rawX, c.XMin, c.XCenter, c.XMax, deadzone),
		calibration.Remap(rawY, c.YMin, c.YCenter, c.YMax, deadzone))
}
