/*
Copyright 2025 The Viewdex Authors.

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

// Package log is a thin adapter around glog, so that the rest of the
// codebase does not import the logging implementation directly. This makes
// it possible to swap the backend without touching call sites.
package log

import (
	"github.com/golang/glog"
)

// Level is used with V.
type Level = glog.Level

var (
	// Flush ensures any pending I/O is written.
	Flush = glog.Flush

	// V quickly checks if the logging verbosity meets a threshold.
	V = glog.V

	// Info formats arguments like fmt.Print.
	Info = glog.Info
	// Infof formats arguments like fmt.Printf.
	Infof = glog.Infof

	// Warning formats arguments like fmt.Print.
	Warning = glog.Warning
	// Warningf formats arguments like fmt.Printf.
	Warningf = glog.Warningf

	// Error formats arguments like fmt.Print.
	Error = glog.Error
	// Errorf formats arguments like fmt.Printf.
	Errorf = glog.Errorf
)
