/*
Package cowarray provides the copy-on-write array primitive backing package
cowset.

A Container holds one immutable snapshot slice at a time. Readers load the
current snapshot with a single atomic read and compute over that local
reference; they never block and never observe a partially built array. Writers
serialize on the container's writer lock, build a replacement slice and
publish it atomically. A published slice is never mutated afterwards, so
snapshots captured by in-flight readers stay valid indefinitely.

The splice helpers (InsertAt, RemoveAt, RemoveRange, Window.RemoveIf) follow
the same read-current/copy-with-splice/publish discipline. Go mutexes do not
re-enter, therefore these helpers do not acquire the writer lock themselves:
the caller holds it around the whole read-modify-publish sequence.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package cowarray

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
