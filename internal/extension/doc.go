// Package extension hosts Lua scripts that contribute binding groups.
// Scripts run in a sandboxed interpreter with a single registration API;
// everything they register lands in an addon-source configuration layer.
package extension
