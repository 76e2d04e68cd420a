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
	"fmt"
	"os"
	"os/exec"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// LocalConfig configures where Local keeps output of executed commands.
type LocalConfig struct {
	// WorkDir is the parent of per-command output directories. Current directory when empty.
	WorkDir string
	// Prefix is the first part of output directory name.
	Prefix string
}

// Local runs commands on local machine via exec.Command, as current user.
type Local struct {
	config LocalConfig
	osFs   afero.Fs
}

// NewLocalWithConfig returns a Local instance.
func NewLocalWithConfig(config LocalConfig) Local {
	return Local{config: config, osFs: afero.NewOsFs()}
}

// Name returns user-friendly name of executor.
func (l Local) Name() string {
	return "Local"
}

// Execute runs the command and blocks until it exits.
func (l Local) Execute(command Command) error {
	stdoutFile, stderrFile, err := createExecutorOutputFiles(command, l.config.WorkDir, l.config.Prefix)
	if err != nil {
		return &ExternalToolError{Command: command, ExitCode: -1, Output: err.Error()}
	}
	defer stdoutFile.Close()
	defer stderrFile.Close()

	log.Infof("Starting %s", command.String())

	cmd := exec.Command(command.Name, command.Args...)
	// Own process group so fio and its children can be terminated together.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	if err := cmd.Start(); err != nil {
		log.Errorf("Command %q could not be started: %v", command.String(), err)
		return &ExternalToolError{Command: command, ExitCode: -1, Output: err.Error()}
	}

	pid := cmd.Process.Pid
	log.Debugf("Started with pid %d", pid)
	register(pid, command)
	defer unregister(pid)

	waitErr := cmd.Wait()
	exitCode := exitCodeOf(cmd.ProcessState)
	if cmd.ProcessState == nil {
		log.Errorf("Command %q could not be waited for: %v", command.String(), waitErr)
		return &ExternalToolError{Command: command, ExitCode: exitCode, Output: fmt.Sprintf("%v", waitErr)}
	}

	if exitCode != 0 {
		stdoutTail, stderrTail := readOutputTail(l.osFs, stdoutFile.Name(), stderrFile.Name(), tailLineCount)
		LogUnsucessfulExecution(command, l.Name(), stdoutFile.Name(), stderrFile.Name(), stdoutTail, stderrTail, exitCode)
		return &ExternalToolError{
			Command:  command,
			ExitCode: exitCode,
			Output:   stdoutTail + stderrTail,
		}
	}

	LogSuccessfulExecution(command, l.Name(), stdoutFile.Name(), stderrFile.Name())
	return nil
}

// exitCodeOf returns -1 when there is no process state at all.
func exitCodeOf(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return state.ExitCode()
	}
	// If process exited on its own, show the exit status.
	if status.Exited() {
		return status.ExitStatus()
	}
	// Show what signal caused the termination.
	return -int(status.Signal())
}
