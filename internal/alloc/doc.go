// Package alloc places the container writer's structures in the output
// file. Object headers, name heaps, and the finalized root group each ask
// for a block; blocks are appended at end-of-file and never reclaimed,
// which keeps every address stable from the moment it is handed out.
package alloc
