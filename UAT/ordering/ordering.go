// Package ordering holds a job that must open a connection, run a command on it, and close it.
package ordering

// Connection is a session to a remote host.
type Connection interface {
	Open() error
	Close()
}

// Command runs against an open connection.
type Command interface {
	Run(conn Connection) error
}

// Execute opens conn, runs cmd on it, and closes it.
func Execute(conn Connection, cmd Command) error {
	err := conn.Open()
	if err != nil {
		return err
	}

	defer conn.Close()

	return cmd.Run(conn)
}

// ExecuteCareless runs cmd before opening conn.
func ExecuteCareless(conn Connection, cmd Command) error {
	err := cmd.Run(conn)

	_ = conn.Open()

	conn.Close()

	return err
}
