// Copyright (C) 2025 Aurum Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The node run loop blocks on the command context, so the registered
// command must carry the context it was registered with or signal
// handling never reaches it.
func TestNodeCommandCarriesContext(t *testing.T) {
	parser := flags.NewParser(&emptyOpts{}, flags.Default)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, Node(ctx, parser))
	assert.Equal(t, ctx, nodeCmd.ctx)
}
