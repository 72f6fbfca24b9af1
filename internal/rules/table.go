package rules

// defaultRules is the ordered rule table. Earlier rules take precedence, so
// specific patterns (app-specific audio and microphone complaints) must stay
// above the broad application rules that would otherwise swallow them.
var defaultRules = []Rule{
	// Power, short phrasings.
	{
		Keywords:   []string{"ps not start"},
		Component:  "PSU Upgrade",
		Confidence: 0.95,
		Rationale:  "Power supply not starting indicates PSU failure. Also check the power cable.",
		Related:    []string{"Power Cable Replacement"},
	},
	{
		Keywords:   []string{"pc not start"},
		Component:  "PSU Upgrade",
		Confidence: 0.94,
		Rationale:  "PC not starting could be a PSU or power cable issue.",
		Related:    []string{"Power Cable Replacement"},
	},
	{
		Keywords:   []string{"no power"},
		Component:  "PSU Upgrade",
		Confidence: 0.95,
		Rationale:  "No power usually means PSU failure.",
		Related:    []string{"Power Cable Replacement"},
	},
	{
		Keywords:   []string{"pc shuts down instantly"},
		Component:  "PSU Upgrade",
		Confidence: 0.96,
		Rationale:  "Instant shutdowns are typically caused by power supply failure.",
		Related:    []string{"Power Cable Replacement"},
	},
	{
		Keywords:   []string{"random shutdown"},
		Component:  "PSU Upgrade",
		Confidence: 0.94,
		Rationale:  "Random shutdowns often indicate an insufficient or failing power supply.",
		Related:    []string{"CPU Cooler Upgrade"},
	},

	// Performance, short phrasings.
	{
		Keywords:   []string{"pc slow"},
		Component:  "RAM Upgrade",
		Confidence: 0.90,
		Rationale:  "A slow PC often needs a RAM or SSD upgrade.",
		Related:    []string{"SSD Upgrade", "CPU Upgrade"},
	},
	{
		Keywords:   []string{"computer slow"},
		Component:  "RAM Upgrade",
		Confidence: 0.90,
		Rationale:  "A slow computer usually needs a RAM or SSD upgrade.",
		Related:    []string{"SSD Upgrade"},
	},

	// Network, short phrasings.
	{
		Keywords:   []string{"no internet"},
		Component:  "WiFi Adapter Upgrade",
		Confidence: 0.92,
		Rationale:  "No internet could be a WiFi adapter or router issue.",
		Related:    []string{"Router Upgrade"},
	},

	// Display plus power symptoms.
	{
		Keywords:   []string{"no display", "fans spinning"},
		Component:  "Monitor or GPU Check",
		Confidence: 0.95,
		Rationale:  "No display with fans spinning typically indicates a GPU or monitor issue. Check GPU connections and monitor cables first.",
		Related:    []string{"Display Cable Replacement"},
	},
	{
		Keywords:   []string{"black screen", "fans"},
		Component:  "Monitor or GPU Check",
		Confidence: 0.95,
		Rationale:  "A black screen with working fans suggests a display or GPU problem. Verify monitor connections and GPU seating.",
		Related:    []string{"Display Cable Replacement"},
	},

	// Memory.
	{
		Keywords:   []string{"out of memory"},
		Component:  "RAM Upgrade",
		Confidence: 0.93,
		Rationale:  "Memory errors suggest RAM capacity issues. Add more RAM.",
		Related:    []string{"SSD Upgrade"},
	},
	{
		Keywords:   []string{"tabs closing"},
		Component:  "RAM Upgrade",
		Confidence: 0.92,
		Rationale:  "Browser tabs closing automatically indicates insufficient RAM.",
		Related:    []string{"SSD Upgrade"},
	},
	{
		Keywords:   []string{"slow", "chrome tabs"},
		Component:  "RAM Upgrade",
		Confidence: 0.92,
		Rationale:  "Slow performance with many browser tabs typically indicates insufficient RAM.",
		Related:    []string{"SSD Upgrade"},
	},

	// Storage.
	{
		Keywords:   []string{"slow boot"},
		Component:  "SSD Upgrade",
		Confidence: 0.91,
		Rationale:  "Slow boot times are often caused by an old HDD. Upgrade to an SSD for much faster startup.",
		Related:    []string{"RAM Upgrade"},
	},
	{
		Keywords:   []string{"disk 100%"},
		Component:  "SSD Upgrade",
		Confidence: 0.90,
		Rationale:  "Constant full disk usage indicates a storage bottleneck.",
		Related:    []string{"RAM Upgrade"},
	},

	// Graphics.
	{
		Keywords:   []string{"low fps"},
		Component:  "GPU Upgrade",
		Confidence: 0.92,
		Rationale:  "Low FPS typically indicates insufficient GPU power.",
		Related:    []string{"CPU Upgrade", "RAM Upgrade"},
	},
	{
		Keywords:   []string{"gaming lag"},
		Component:  "GPU Upgrade",
		Confidence: 0.92,
		Rationale:  "Gaming lag typically indicates insufficient GPU power.",
		Related:    []string{"CPU Upgrade"},
	},
	{
		Keywords:   []string{"frame drops"},
		Component:  "GPU Upgrade",
		Confidence: 0.92,
		Rationale:  "Frame drops typically indicate insufficient GPU power.",
		Related:    []string{"CPU Upgrade"},
	},

	// Cooling. GPU-specific heat complaints stay above the generic rule.
	{
		Keywords:   []string{"gpu", "overheat"},
		Component:  "GPU Cooler Upgrade",
		Confidence: 0.90,
		Rationale:  "GPU overheating requires better cooling. Check the GPU fans first.",
		Related:    []string{"Case Fan Upgrade"},
	},
	{
		Keywords:   []string{"thermal paste"},
		Component:  "Thermal Paste Reapply",
		Confidence: 0.93,
		Rationale:  "High CPU temperatures often come from dried thermal paste.",
		Related:    []string{"CPU Cooler Upgrade"},
	},
	{
		Keywords:   []string{"overheat"},
		Component:  "CPU Cooler Upgrade",
		Confidence: 0.90,
		Rationale:  "Overheating requires better cooling. Upgrade the CPU cooler and check the thermal paste.",
		Related:    []string{"Thermal Paste Reapply", "Case Fan Upgrade"},
	},

	// Network.
	{
		Keywords:   []string{"wifi disconnects"},
		Component:  "WiFi Adapter Upgrade",
		Confidence: 0.91,
		Rationale:  "Unstable WiFi connections suggest adapter issues.",
		Related:    []string{"Router Upgrade"},
	},
	{
		Keywords:   []string{"internet drops"},
		Component:  "WiFi Adapter Upgrade",
		Confidence: 0.91,
		Rationale:  "Connection drops suggest a WiFi adapter or router problem.",
		Related:    []string{"Router Upgrade"},
	},
	{
		Keywords:   []string{"wifi not working"},
		Component:  "WiFi Adapter Upgrade",
		Confidence: 0.89,
		Rationale:  "Complete WiFi failure may indicate adapter malfunction.",
		Related:    []string{"Router Upgrade"},
	},

	// Display damage and artifacts.
	{
		Keywords:   []string{"dead pixels"},
		Component:  "Monitor Replacement",
		Confidence: 0.95,
		Rationale:  "Physical screen damage requires monitor replacement.",
		Related:    []string{"Display Cable Replacement"},
	},
	{
		Keywords:   []string{"cracked screen"},
		Component:  "Monitor Replacement",
		Confidence: 0.95,
		Rationale:  "Physical screen damage requires monitor replacement.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"flickering"},
		Component:  "Monitor or GPU Check",
		Confidence: 0.92,
		Rationale:  "Screen flickering can indicate GPU issues or monitor problems. Check both.",
		Related:    []string{"Display Cable Replacement"},
	},

	// Battery and peripherals.
	{
		Keywords:   []string{"battery not charging"},
		Component:  "Laptop Battery Replacement",
		Confidence: 0.93,
		Rationale:  "A battery that no longer charges needs replacement. Check whether it is swollen.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"laptop battery"},
		Component:  "Laptop Battery Replacement",
		Confidence: 0.93,
		Rationale:  "Laptop battery issues usually require battery replacement.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"need more usb"},
		Component:  "USB Hub",
		Confidence: 0.88,
		Rationale:  "Insufficient USB ports can be solved with a USB hub.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"usb ports not enough"},
		Component:  "USB Hub",
		Confidence: 0.88,
		Rationale:  "Insufficient USB ports can be solved with a USB hub.",
		Related:    []string{},
	},

	// App-specific audio complaints. These must precede the webcam rules for
	// the same applications.
	{
		Keywords:   []string{"zoom", "no sound"},
		Component:  "Audio Issue",
		Confidence: 0.93,
		Rationale:  "No sound in Zoom is an audio issue. Check audio settings in Zoom and the OS.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"zoom", "no audio"},
		Component:  "Audio Issue",
		Confidence: 0.93,
		Rationale:  "No audio in Zoom is an audio issue. Check device selection in the app.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"teams", "no sound"},
		Component:  "Audio Issue",
		Confidence: 0.93,
		Rationale:  "No sound in Teams is an audio issue. Check audio settings in Teams and the OS.",
		Related:    []string{},
	},

	// App-specific microphone complaints, also above the broad app rules.
	{
		Keywords:   []string{"zoom", "mic"},
		Component:  "Microphone Upgrade",
		Confidence: 0.92,
		Rationale:  "Zoom microphone issues may need a microphone upgrade. Check mic settings and permissions.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"teams", "mic"},
		Component:  "Microphone Upgrade",
		Confidence: 0.92,
		Rationale:  "Teams microphone issues may need a microphone upgrade. Check mic settings and permissions.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"discord", "mic"},
		Component:  "Microphone Upgrade",
		Confidence: 0.92,
		Rationale:  "Discord microphone issues may need a microphone upgrade. Check mic settings and permissions.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"can't hear me"},
		Component:  "Microphone Upgrade",
		Confidence: 0.91,
		Rationale:  "People not hearing you indicates a microphone problem.",
		Related:    []string{},
	},

	// App-specific camera complaints.
	{
		Keywords:   []string{"zoom", "camera"},
		Component:  "Webcam Upgrade",
		Confidence: 0.95,
		Rationale:  "Zoom camera issues are webcam problems. Check webcam settings in Zoom and Windows Privacy settings.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"zoom", "video"},
		Component:  "Webcam Upgrade",
		Confidence: 0.94,
		Rationale:  "Zoom video not working indicates a webcam problem. Check webcam permissions and hardware.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"zoom", "not showing"},
		Component:  "Webcam Upgrade",
		Confidence: 0.94,
		Rationale:  "Zoom not showing video is a webcam issue.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"zoom"},
		Component:  "Webcam Upgrade",
		Confidence: 0.90,
		Rationale:  "Zoom issues are usually webcam problems. Check webcam settings in Zoom and Windows Privacy settings.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"teams", "camera"},
		Component:  "Webcam Upgrade",
		Confidence: 0.94,
		Rationale:  "Teams camera not working is a webcam issue.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"teams"},
		Component:  "Webcam Upgrade",
		Confidence: 0.92,
		Rationale:  "Teams camera and video issues are webcam problems.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"skype"},
		Component:  "Webcam Upgrade",
		Confidence: 0.92,
		Rationale:  "Skype camera and video issues are webcam problems.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"video call"},
		Component:  "Webcam Upgrade",
		Confidence: 0.91,
		Rationale:  "Video call issues are usually webcam problems.",
		Related:    []string{},
	},

	// Generic camera complaints.
	{
		Keywords:   []string{"camera not working"},
		Component:  "Webcam Upgrade",
		Confidence: 0.95,
		Rationale:  "A camera that stopped working needs a webcam upgrade or repair.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"webcam not working"},
		Component:  "Webcam Upgrade",
		Confidence: 0.95,
		Rationale:  "A webcam that stopped working needs an upgrade or repair.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"camera not detected"},
		Component:  "Webcam Upgrade",
		Confidence: 0.94,
		Rationale:  "A camera that is not detected suggests a hardware or driver failure.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"no camera"},
		Component:  "Webcam Upgrade",
		Confidence: 0.92,
		Rationale:  "A missing camera requires installing an external webcam.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"no webcam"},
		Component:  "Webcam Upgrade",
		Confidence: 0.92,
		Rationale:  "A missing webcam requires installing an external one.",
		Related:    []string{},
	},

	// App-specific memory and storage complaints.
	{
		Keywords:   []string{"photoshop", "slow"},
		Component:  "RAM Upgrade",
		Confidence: 0.90,
		Rationale:  "Slow Photoshop performance typically needs more RAM.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"premiere", "slow"},
		Component:  "RAM Upgrade",
		Confidence: 0.90,
		Rationale:  "Slow Premiere performance typically needs more RAM. Video editing uses a lot of it.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"games", "long to load"},
		Component:  "SSD Upgrade",
		Confidence: 0.91,
		Rationale:  "Games taking long to load indicates slow storage.",
		Related:    []string{},
	},
	{
		Keywords:   []string{"games", "slow to load"},
		Component:  "SSD Upgrade",
		Confidence: 0.91,
		Rationale:  "Games loading slowly indicates a storage bottleneck.",
		Related:    []string{},
	},

	// Streaming and buffering.
	{
		Keywords:   []string{"netflix", "buffering"},
		Component:  "WiFi Adapter Upgrade",
		Confidence: 0.92,
		Rationale:  "Netflix buffering indicates a network issue. Check the WiFi adapter and connection speed.",
		Related:    []string{"Router Upgrade"},
	},
	{
		Keywords:   []string{"youtube", "buffering"},
		Component:  "WiFi Adapter Upgrade",
		Confidence: 0.92,
		Rationale:  "YouTube buffering indicates a network issue. Check the WiFi adapter and connection speed.",
		Related:    []string{"Router Upgrade"},
	},
	{
		Keywords:   []string{"streaming", "buffering"},
		Component:  "WiFi Adapter Upgrade",
		Confidence: 0.91,
		Rationale:  "Streaming buffering indicates a network issue.",
		Related:    []string{"Router Upgrade"},
	},
}
