// Package cli provides the interactive tutorias command-line client.
//
// The App restores the session stored by a previous run, then reads
// commands in a REPL until the user exits. When the backend rejects an
// expired session the App is told through Navigate; it prints where the
// user has to log in again and drops to the logged-out state.
//
// Commands:
//   - login <alumno|tutor|admin>, set-password <alumno|tutor>, logout, me
//   - students [page] [search], tutors [page] [search]
//   - sessions [tutor-id] [page] [search]
//   - notices, notice-add, stage [1|2|3]
//   - constancia, referral <department> <period>, report-pdf <1|2> <id>
//   - upload <students|assignment|template> <file>, reset-template
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
