//go:build windows

package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// windowsSender implements Sender for Windows using a PowerShell balloon tip.
type windowsSender struct{}

// newWindowsSender creates a new Windows notification sender.
func newWindowsSender() Sender {
	return &windowsSender{}
}

// newLinuxSender returns an unsupported sender on windows.
func newLinuxSender() Sender {
	return &unsupportedSender{}
}

// newDarwinSender returns an unsupported sender on windows.
func newDarwinSender() Sender {
	return &unsupportedSender{}
}

// Send dispatches a balloon tip notification via PowerShell.
// The balloon needs the icon to stay visible, hence the trailing sleep.
func (s *windowsSender) Send(_, summary, body string, displayMillis int) error {
	if displayMillis <= 0 {
		displayMillis = 10000
	}
	script := fmt.Sprintf(`
Add-Type -AssemblyName System.Windows.Forms
$notify = New-Object System.Windows.Forms.NotifyIcon
$notify.Icon = [System.Drawing.SystemIcons]::Information
$notify.Visible = $true
$notify.ShowBalloonTip(%d, "%s", "%s", [System.Windows.Forms.ToolTipIcon]::None)
Start-Sleep -s 5
$notify.Visible = $false
$notify.Dispose()
`, displayMillis, escapePS(summary), escapePS(body))

	cmd := exec.Command("powershell", "-Command", script)
	return cmd.Run()
}

// Probe checks for powershell.
func (s *windowsSender) Probe() (bool, string) {
	if !toolAvailable("powershell") {
		return false, "powershell not found in PATH"
	}
	return true, ""
}

// escapePS escapes double quotes for embedding in a PowerShell string.
func escapePS(s string) string {
	return strings.ReplaceAll(s, `"`, "`\"")
}
