// SPDX-License-Identifier: Unlicense OR MIT

/*
Package sizing resolves a list of abstract size requests into concrete
lengths along one axis.

A Size is either exact, relative to the total, or a weighted share of
whatever space the exact and relative sizes leave over. Relative and
shared sizes may carry a minimum and a maximum.

Resolution is a single pass: shares are computed from the leftover space,
then clamped to their bounds. Space gained or lost by clamping is not
handed to the other shares, so a clamped layout may overflow or underfill
its container. Leftover space is never negative; shares of an
oversubscribed axis resolve to zero (or their minimum).
*/
package sizing
