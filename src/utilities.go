package src

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

func BindPort(host string, port int) (net.Listener, error) {
	bind_addr := net.JoinHostPort(host, strconv.Itoa(port))
	return net.Listen("tcp", bind_addr)
}

type Server struct {
	config Config
}

func NewServer(config Config) *Server {
	return &Server{config: config}
}

// Serve accepts and handles connections one at a time until the listener is closed.
func (s *Server) Serve(listener net.Listener) error {
	s.config.Logger.Info().
		Str("addr", listener.Addr().String()).
		Str("root", s.config.Root).
		Stringer("policy", s.config.Policy).
		Msg("serving")

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.config.Logger.Error().Err(err).Msg("accept failed")
			continue
		}

		NewConnectionHandler(conn, s.config).Handle()
	}
}

func DisplayHelp(w io.Writer) {
	bold := color.New(color.Bold)
	arg := color.New(color.FgCyan)

	bold.Fprintln(w, "Usage: ./server [help | --host=HOST --port=PORT --root=ROOT --notfound=FILE --policy=clamp|reject --buffer=SIZE --strict --debug]")
	fmt.Fprintf(w, "\t%s  interface to bind, %q by default.\n", arg.Sprint("HOST"), DEFAULT_HOST)
	fmt.Fprintf(w, "\t%s  valid TCP port to serve on, %d by default.\n", arg.Sprint("PORT"), DEFAULT_PORT)
	fmt.Fprintf(w, "\t%s  document root to serve, %q by default.\n", arg.Sprint("ROOT"), DEFAULT_ROOT)
	fmt.Fprintf(w, "\t%s  page sent with every 404, %q by default.\n", arg.Sprint("FILE"), DEFAULT_NOT_FOUND)
	fmt.Fprintf(w, "\t%s  clamp drops \"..\" above the root, reject answers 404. clamp by default.\n", arg.Sprint("--policy"))
	fmt.Fprintf(w, "\t%s  bytes read from each connection, %d by default.\n", arg.Sprint("SIZE"), DEFAULT_BUFFER_SIZE)
	fmt.Fprintf(w, "\t%s  answer malformed requests with 400 Bad Request.\n", arg.Sprint("--strict"))
	fmt.Fprintf(w, "\t%s  log raw requests and responses.\n", arg.Sprint("--debug"))
}

func PrintError(w io.Writer, format string, args ...any) {
	color.New(color.FgRed).Fprintf(w, format, args...)
}

func ExtractArgs(args []string) (Config, error) {
	config := DefaultConfig()

	for _, arg := range args {
		key, value, has_value := strings.Cut(arg, "=")

		switch key {
		case "--host":
			if value == "" {
				return config, errors.New("Provided host is empty")
			}
			config.Host = value

		case "--port":
			suggested_port, err := strconv.Atoi(value)
			if err != nil {
				return config, fmt.Errorf("Provided port %s illegal", value)
			}
			if suggested_port < 1 || suggested_port > 65535 {
				return config, fmt.Errorf("Provided port %s not in valid range. Requires 0<PORT<65536.", value)
			}
			config.Port = suggested_port

		case "--root":
			info, err := os.Stat(value)
			if err != nil {
				return config, fmt.Errorf("While looking for path %s, encountered error: %w", value, err)
			}
			if !info.IsDir() {
				return config, fmt.Errorf("Provided root %s is not a directory", value)
			}
			config.Root = value

		case "--notfound":
			if value == "" {
				return config, errors.New("Provided not found document is empty")
			}
			config.NotFoundDocument = value

		case "--policy":
			policy, err := ParsePolicy(value)
			if err != nil {
				return config, err
			}
			config.Policy = policy

		case "--buffer":
			size, err := strconv.Atoi(value)
			if err != nil || size <= 0 {
				return config, fmt.Errorf("Provided buffer size %s illegal", value)
			}
			config.ReadBufferSize = size

		case "--strict":
			if has_value {
				return config, fmt.Errorf("%s takes no value", key)
			}
			config.StrictSyntax = true

		case "--debug":
			if has_value {
				return config, fmt.Errorf("%s takes no value", key)
			}
			config.Debug = true

		default:
			return config, fmt.Errorf("Unknown argument %s", arg)
		}
	}

	return config, nil
}
