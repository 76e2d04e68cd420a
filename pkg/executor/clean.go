// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package executor

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
)

// processStopper keeps process groups of running commands so they can be terminated on interrupt.
type processStopper struct {
	sync.Mutex
	groups map[int]Command
}

var globalProcessStopper = &processStopper{groups: map[int]Command{}}

// RegisterInterruptHandle waits for SIGINT or SIGTERM, terminates process groups of running
// commands and exits. Returned function terminates them on demand.
func RegisterInterruptHandle() func() {
	return globalProcessStopper.registerInterruptHandle()
}

func register(pgid int, command Command) {
	globalProcessStopper.register(pgid, command)
}

func unregister(pgid int) {
	globalProcessStopper.unregister(pgid)
}

func (ps *processStopper) registerInterruptHandle() func() {
	logrus.Debugf("clean: interrupt handle initialized")

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		logrus.Debugf("clean: stopAll on signal '%v'", <-c)
		ps.stopAll()
		os.Exit(1)
	}()
	return ps.stopAll
}

func (ps *processStopper) stopAll() {
	ps.Lock()
	defer ps.Unlock()
	for pgid, command := range ps.groups {
		// The kill syscall interprets a negated PID as the process group.
		err := syscall.Kill(-pgid, syscall.SIGTERM)
		logrus.Debugf("clean: SIGTERM sent to %q (pgid %d) returned '%v'", command.String(), pgid, err)
	}
}

func (ps *processStopper) register(pgid int, command Command) {
	ps.Lock()
	defer ps.Unlock()
	ps.groups[pgid] = command
}

func (ps *processStopper) unregister(pgid int) {
	ps.Lock()
	defer ps.Unlock()
	delete(ps.groups, pgid)
}
