package cmd

import (
	"os"
	"runtime"
)

// openTerminalIO opens the controlling terminal devices so the TUI can read
// keys and write frames while stdin carries piped data.
func openTerminalIO() (*os.File, *os.File, error) {
	in, out := terminalDeviceNames(runtime.GOOS)

	input, err := os.OpenFile(in, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, err
	}
	if out == "" || out == in {
		return input, input, nil
	}
	output, err := os.OpenFile(out, os.O_RDWR, 0)
	if err != nil {
		return input, nil, err
	}
	return input, output, nil
}

// terminalDeviceNames returns the platform's terminal device paths. Windows
// consoles split input and output devices; everything else shares /dev/tty.
func terminalDeviceNames(goos string) (input string, output string) {
	if goos == "windows" {
		return "CONIN$", "CONOUT$"
	}
	return "/dev/tty", "/dev/tty"
}
