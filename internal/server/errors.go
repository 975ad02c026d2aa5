// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var errNoListenAddress = errors.New("devnet listen address or handler is not set")
