// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package session drives the device state machine: wait for a start
// trigger, classify the stance, then run the matching repetition detector
// until the routine completes.
package session

import (
	"log"
	"time"

	"github.com/relabs-tech/exercise_tracker/internal/exercise"
	"github.com/relabs-tech/exercise_tracker/internal/feedback"
	"github.com/relabs-tech/exercise_tracker/internal/motion"
)

// Trigger is a non-blocking poll of the start buttons (logical OR of the
// two physical buttons).
type Trigger interface {
	Pressed() (bool, error)
}

// Options tunes the controller loops. Zero values take defaults.
type Options struct {
	Params exercise.Params
	// IdlePoll is the button poll cadence while idle.
	IdlePoll time.Duration
	// ClassifyInterval is the sampling cadence of the upright
	// disambiguation loop.
	ClassifyInterval time.Duration
	// CompletionPause is the hold after a finished routine before
	// returning to the idle menu.
	CompletionPause time.Duration
}

// Controller owns the single active session. The device is either idle or
// tracking exactly one exercise; there is no abort path besides a power
// cycle, so the tracking loop blocks until the wearer finishes.
type Controller struct {
	sampler  motion.Sampler
	trigger  Trigger
	tracker  *exercise.Tracker
	renderer feedback.Renderer
	opts     Options

	sleep func(time.Duration) // time.Sleep, replaced in tests
}

// New creates a controller over the given collaborators.
func New(sampler motion.Sampler, trigger Trigger, tracker *exercise.Tracker, renderer feedback.Renderer, opts Options) *Controller {
	if opts.Params == (exercise.Params{}) {
		opts.Params = exercise.DefaultParams()
	}
	if opts.IdlePoll == 0 {
		opts.IdlePoll = 50 * time.Millisecond
	}
	if opts.ClassifyInterval == 0 {
		opts.ClassifyInterval = 100 * time.Millisecond
	}
	if opts.CompletionPause == 0 {
		opts.CompletionPause = 2 * time.Second
	}
	return &Controller{
		sampler:  sampler,
		trigger:  trigger,
		tracker:  tracker,
		renderer: renderer,
		opts:     opts,
		sleep:    time.Sleep,
	}
}

// Tracker exposes the routine state holder, for runners that publish
// progress snapshots.
func (c *Controller) Tracker() *exercise.Tracker {
	return c.tracker
}

// Run loops forever through idle, classification, and tracking.
func (c *Controller) Run() error {
	log.Println("session: controller running")
	for {
		c.runOnce()
	}
}

// runOnce performs one idle → classify → track pass. It returns to the
// caller when the routine completes or classification yields nothing
// actionable.
func (c *Controller) runOnce() {
	if err := c.renderer.IdleMenu(c.tracker.EligibleKinds()); err != nil {
		log.Printf("session: idle menu render error: %v", err)
	}

	c.waitForTrigger()

	if err := c.renderer.SessionStarted(); err != nil {
		log.Printf("session: start render error: %v", err)
	}

	det, ok := c.classify()
	if !ok {
		log.Println("session: classification not actionable, back to idle")
		return
	}

	log.Printf("session: tracking %s", det.Kind())
	if err := c.renderer.TrackingStarted(det.Kind()); err != nil {
		log.Printf("session: tracking start render error: %v", err)
	}
	c.track(det)
	c.sleep(c.opts.CompletionPause)
}

func (c *Controller) waitForTrigger() {
	for {
		pressed, err := c.trigger.Pressed()
		if err != nil {
			log.Printf("session: trigger poll error: %v", err)
		} else if pressed {
			return
		}
		c.sleep(c.opts.IdlePoll)
	}
}

// classify captures one sample and binds a detector, or reports that no
// session can start.
func (c *Controller) classify() (exercise.Detector, bool) {
	s, err := c.sampler.Next()
	if err != nil {
		log.Printf("session: classification sample error: %v", err)
		return nil, false
	}

	switch exercise.ClassifyStance(s) {
	case exercise.StanceFaceDown:
		if !c.tracker.Eligible(exercise.Pushups) {
			return nil, false
		}
		return exercise.NewPushupDetector(c.opts.Params), true

	case exercise.StanceLyingBack:
		if !c.tracker.Eligible(exercise.Situps) {
			return nil, false
		}
		return exercise.NewSitupDetector(c.opts.Params), true

	case exercise.StanceUpright:
		return c.disambiguate()
	}

	// Ties and unmatched orderings: stay idle, the wearer can retry.
	return nil, false
}

// disambiguate resolves the upright stance by watching the motion itself:
// whichever fires first of the jump threshold and the squat-down
// condition binds the session. The loop has no timeout; it blocks until
// one condition fires.
func (c *Controller) disambiguate() (exercise.Detector, bool) {
	jacksOpen := c.tracker.Eligible(exercise.JumpingJacks)
	squatsOpen := c.tracker.Eligible(exercise.Squats)
	if !jacksOpen && !squatsOpen {
		return nil, false
	}

	for {
		s, err := c.sampler.Next()
		if err != nil {
			log.Printf("session: disambiguation sample error: %v", err)
			c.sleep(c.opts.ClassifyInterval)
			continue
		}

		if jacksOpen && s.X <= c.opts.Params.JumpThreshold {
			// The jump that resolved classification already counts
			// toward the first repetition.
			return exercise.NewJumpingJackDetector(c.opts.Params, 1), true
		}
		if squatsOpen && s.Z < s.Y {
			return exercise.NewSquatDetector(c.opts.Params), true
		}

		c.sleep(c.opts.ClassifyInterval)
	}
}

// track runs the bound detector until the routine completes. Sample
// errors are logged and retried on the next tick; the loop has no other
// exit.
func (c *Controller) track(det exercise.Detector) {
	kind := det.Kind()
	for {
		s, err := c.sampler.Next()
		if err != nil {
			log.Printf("session: %s sample error: %v", kind, err)
			c.sleep(det.Interval())
			continue
		}

		if det.Observe(s) {
			rep, finished := c.tracker.CompleteRep(kind)
			if err := c.renderer.RepCompleted(kind, rep); err != nil {
				log.Printf("session: rep render error: %v", err)
			}
			if finished {
				if err := c.renderer.RoutineCompleted(kind); err != nil {
					log.Printf("session: completion render error: %v", err)
				}
				log.Printf("session: %s routine complete", kind)
				return
			}
		}

		c.sleep(det.Interval())
	}
}
