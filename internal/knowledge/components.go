package knowledge

// defaultComponents is the author-curated component set. Order matters only
// for listing output; classification never depends on it.
var defaultComponents = []Component{
	{
		ID:         "RAM Upgrade",
		Category:   CategoryPerformance,
		Definition: "RAM (Random Access Memory) is the fast working memory your computer uses to hold data for running programs and the operating system.",
		WhyUseful:  "If you run out of RAM, the system is forced to swap data to disk, causing freezes, stutters, and very slow multitasking.",
		FixingTips: []string{
			"Check current RAM usage in Task Manager (Ctrl+Shift+Esc)",
			"Close unnecessary programs and browser tabs",
			"Check if RAM sticks are fully seated in their slots",
			"Run Windows Memory Diagnostic from the Start menu",
			"Verify RAM compatibility with your motherboard",
			"If RAM usage is consistently above 80%, an upgrade is recommended",
		},
		Related: []string{"SSD Upgrade", "CPU Upgrade"},
	},
	{
		ID:         "CPU Upgrade",
		Category:   CategoryPerformance,
		Definition: "The CPU (Central Processing Unit) is the main processor that handles general logic, calculations, and system control.",
		WhyUseful:  "A faster CPU improves performance in tasks like compiling code, running many background apps, and CPU-heavy games.",
		FixingTips: []string{
			"Check CPU usage in Task Manager",
			"Update CPU and chipset drivers",
			"Check CPU temperature (should stay under 85°C under load)",
			"Look for bottlenecking: high CPU usage with low GPU usage in games",
			"Verify CPU compatibility with the motherboard socket",
			"If the CPU sits at 100% during normal tasks, an upgrade is recommended",
		},
		Related: []string{"RAM Upgrade", "CPU Cooler Upgrade"},
	},
	{
		ID:         "GPU Upgrade",
		Category:   CategoryPerformance,
		Definition: "A GPU (Graphics Processing Unit) handles rendering for games, 3D applications, and GPU-accelerated tasks like video editing.",
		WhyUseful:  "A more capable GPU delivers higher frame rates, better visual quality, and smoother performance in modern games and creative software.",
		FixingTips: []string{
			"Update graphics drivers from the manufacturer website (NVIDIA/AMD/Intel)",
			"Check GPU temperature (should be under 80°C under load)",
			"Clean GPU fans and heatsink from dust",
			"Check that the GPU is properly seated in its PCIe slot",
			"Verify the power supply can handle the GPU's requirements",
			"If FPS is consistently low even on low settings, an upgrade is needed",
		},
		Related: []string{"PSU Upgrade", "GPU Cooler Upgrade"},
	},
	{
		ID:         "CPU Cooler Upgrade",
		Category:   CategoryPerformance,
		Definition: "A CPU cooler sits on top of the processor and removes heat using a heatsink and fan, keeping temperatures within safe limits.",
		WhyUseful:  "Better coolers keep the CPU from thermal throttling, which maintains higher boost clocks and reduces noise.",
		FixingTips: []string{
			"Check CPU temperature in BIOS or with a tool like Core Temp",
			"Clean the CPU cooler and case fans from dust",
			"Reapply thermal paste (replace every 2-3 years)",
			"Check that the cooler is properly mounted",
			"If CPU temperature exceeds 85°C under load, a cooler upgrade is needed",
		},
		Related: []string{"Thermal Paste Reapply", "Case Fan Upgrade"},
	},
	{
		ID:         "GPU Cooler Upgrade",
		Category:   CategoryPerformance,
		Definition: "A GPU cooler is the fan and heatsink assembly mounted on the graphics card that keeps its processor within safe temperatures.",
		WhyUseful:  "Stronger GPU cooling prevents thermal throttling during long gaming or rendering sessions and extends the card's lifespan.",
		FixingTips: []string{
			"Check GPU temperature using MSI Afterburner or GPU-Z",
			"Clean GPU fans and heatsink",
			"Improve case airflow",
			"Check that the GPU fans spin under load",
			"If GPU temperature exceeds 83°C, a cooling upgrade is recommended",
		},
		Related: []string{"Case Fan Upgrade"},
	},
	{
		ID:         "Thermal Paste Reapply",
		Category:   CategoryPerformance,
		Definition: "Thermal paste is the conductive compound between the CPU and its cooler that transfers heat; it dries out over time.",
		WhyUseful:  "Fresh thermal paste restores heat transfer, lowering temperatures without buying new hardware.",
		FixingTips: []string{
			"Power off the PC and unplug it",
			"Remove the CPU cooler carefully",
			"Clean old paste with isopropyl alcohol and a lint-free cloth",
			"Apply a pea-sized amount of new paste to the CPU center",
			"Reinstall the cooler evenly without overtightening",
		},
		Related: []string{"CPU Cooler Upgrade"},
	},
	{
		ID:         "Case Fan Upgrade",
		Category:   CategoryPerformance,
		Definition: "Case fans are mounted in the PC case to pull in cool air and push out hot air, controlling internal airflow.",
		WhyUseful:  "Adding or upgrading fans reduces component temperatures, which improves stability and extends hardware lifespan.",
		FixingTips: []string{
			"Check that existing fans are spinning",
			"Clean fans from dust buildup",
			"Check fan connections to the motherboard",
			"Ensure proper airflow: intake front, exhaust back and top",
		},
		Related: []string{"CPU Cooler Upgrade"},
	},
	{
		ID:         "PSU Upgrade",
		Category:   CategoryPower,
		Definition: "A PSU (Power Supply Unit) converts wall AC power into stable DC power used by the CPU, GPU, storage, and other components.",
		WhyUseful:  "A reliable PSU with enough wattage prevents random shutdowns, protects against power spikes, and feeds stable power to new GPUs.",
		FixingTips: []string{
			"Check that the power cable is properly connected",
			"Try a different power outlet",
			"Check the PSU fan; if it never spins, the PSU may be dead",
			"Listen for clicking or buzzing sounds from the PSU",
			"PSU wattage should be 20-30% above total system power",
			"If the PC won't turn on at all, the PSU is the likely cause",
		},
		Related: []string{"Power Cable Replacement"},
	},
	{
		ID:         "Power Cable Replacement",
		Category:   CategoryPower,
		Definition: "The power cable carries AC power from the wall to the power supply; damaged or loose cables cause intermittent power.",
		WhyUseful:  "Replacing a worn cable is the cheapest fix for a PC that fails to power on or loses power randomly.",
		FixingTips: []string{
			"Check the cable for visible damage or fraying",
			"Try a different power cable",
			"Check the connections at both ends",
			"Test the cable with a multimeter if available",
		},
		Related: []string{"PSU Upgrade"},
	},
	{
		ID:         "Laptop Battery Replacement",
		Category:   CategoryPower,
		Definition: "A laptop battery stores charge for portable use; capacity degrades with charge cycles until it no longer holds power.",
		WhyUseful:  "A new battery restores unplugged runtime and fixes sudden shutdowns caused by a worn cell.",
		FixingTips: []string{
			"Check battery health in the OS battery report",
			"Check whether the battery is swollen (replace immediately if so)",
			"Try charging with a different adapter",
			"Calibrate by fully charging and discharging once",
		},
		Related: []string{},
	},
	{
		ID:         "SSD Upgrade",
		Category:   CategoryStorage,
		Definition: "An SSD (Solid State Drive) is a storage device that uses flash memory instead of spinning disks, so it reads and writes data much faster than a hard drive.",
		WhyUseful:  "Moving the OS and frequently used apps to an SSD dramatically reduces boot time and loading delays, making an old PC feel new again.",
		FixingTips: []string{
			"Check disk usage in Task Manager (Disk tab)",
			"Run Disk Cleanup to free up space",
			"Disable unnecessary startup programs",
			"Check for disk errors: run 'chkdsk C: /f' as administrator",
			"Check disk health with CrystalDiskInfo or a similar tool",
			"If boot time is over a minute, an SSD upgrade is highly recommended",
		},
		Related: []string{"RAM Upgrade", "HDD Upgrade"},
	},
	{
		ID:         "HDD Upgrade",
		Category:   CategoryStorage,
		Definition: "An HDD (Hard Disk Drive) is a mechanical storage device that uses rotating platters to store large amounts of data at low cost.",
		WhyUseful:  "A larger HDD lets you store more games, videos, and backups without worrying about space when SSD capacity is too expensive.",
		FixingTips: []string{
			"Run Disk Cleanup and empty the recycle bin",
			"Uninstall unused programs and games",
			"Move large media files to external storage",
			"Check drive health before it fails completely",
		},
		Related: []string{"SSD Upgrade"},
	},
	{
		ID:         "WiFi Adapter Upgrade",
		Category:   CategoryNetwork,
		Definition: "A WiFi adapter is the component that connects the computer to wireless networks, built in or attached over USB/PCIe.",
		WhyUseful:  "A modern adapter with current WiFi standards fixes dropouts and raises throughput without touching the router.",
		FixingTips: []string{
			"Check that WiFi is enabled (Fn + WiFi key on laptops)",
			"Update WiFi drivers from the manufacturer website",
			"Restart the router and modem",
			"Move closer to the router to check signal strength",
			"Forget and reconnect to the WiFi network",
			"If WiFi keeps disconnecting, an adapter upgrade may be needed",
		},
		Related: []string{"Router Upgrade"},
	},
	{
		ID:         "Router Upgrade",
		Category:   CategoryNetwork,
		Definition: "A router distributes the internet connection to all devices in the home over WiFi and ethernet.",
		WhyUseful:  "A newer router improves range, handles more devices, and removes a bottleneck that no adapter upgrade can fix.",
		FixingTips: []string{
			"Restart the router and leave it off for 30 seconds",
			"Check whether other devices have the same problem",
			"Update the router firmware",
			"Reposition the router away from walls and interference",
		},
		Related: []string{"WiFi Adapter Upgrade"},
	},
	{
		ID:         "Monitor or GPU Check",
		Category:   CategoryDisplay,
		Definition: "A diagnostic pass over the display chain: monitor, cable, and graphics card, to isolate which one fails.",
		WhyUseful:  "No-display symptoms have several possible causes; checking the chain in order avoids replacing the wrong part.",
		FixingTips: []string{
			"Check monitor power and connection cables (HDMI/DisplayPort/VGA)",
			"Try a different monitor or cable",
			"Reseat the GPU in its PCIe slot",
			"Check that GPU fans are spinning",
			"Test with integrated graphics if available",
			"If fans spin but there is no display, the GPU or monitor is the likely cause",
		},
		Related: []string{"Display Cable Replacement", "GPU Upgrade"},
	},
	{
		ID:         "Monitor Replacement",
		Category:   CategoryDisplay,
		Definition: "Replacing the display panel itself, needed when the screen has physical damage or failed hardware.",
		WhyUseful:  "Dead pixels, cracks, and failed backlights cannot be repaired economically; a new monitor is the fix.",
		FixingTips: []string{
			"Confirm the damage appears on this monitor only",
			"Try the monitor on another computer",
			"Check warranty coverage before buying a replacement",
		},
		Related: []string{"Display Cable Replacement"},
	},
	{
		ID:         "Display Cable Replacement",
		Category:   CategoryDisplay,
		Definition: "The cable (HDMI, DisplayPort, DVI, or VGA) that carries the video signal from the computer to the monitor.",
		WhyUseful:  "A worn or loose cable causes flicker, signal loss, and resolution problems that look like monitor or GPU failure.",
		FixingTips: []string{
			"Reseat the cable at both ends",
			"Try a different cable of the same type",
			"Try a different port on the GPU and monitor",
		},
		Related: []string{"Monitor or GPU Check"},
	},
	{
		ID:         "Webcam Upgrade",
		Category:   CategoryOther,
		Definition: "A webcam captures video for calls and recordings, built into laptops or attached externally over USB.",
		WhyUseful:  "An external webcam replaces a failed built-in camera and usually improves image quality for video meetings.",
		FixingTips: []string{
			"Check camera permissions in Windows Privacy settings",
			"Check the camera selection inside the calling app (Zoom/Teams/Skype)",
			"Update or reinstall the camera driver in Device Manager",
			"Test the camera in the built-in Camera app",
			"If the camera is not detected at all, the hardware has likely failed",
		},
		Related: []string{},
	},
	{
		ID:         "Microphone Upgrade",
		Category:   CategoryOther,
		Definition: "A microphone captures your voice for calls and recordings; built-in laptop mics are often low quality or fail silently.",
		WhyUseful:  "An external microphone fixes 'nobody can hear me' problems and makes speech much clearer on calls.",
		FixingTips: []string{
			"Check microphone permissions in Windows Privacy settings",
			"Check the input device selected in the calling app",
			"Check input levels in Sound settings",
			"Update the audio driver in Device Manager",
		},
		Related: []string{},
	},
	{
		ID:         "Audio Issue",
		Category:   CategoryOther,
		Definition: "A sound-output problem in the operating system or application settings rather than a broken hardware part.",
		WhyUseful:  "Most no-sound complaints are fixed by correcting the output device or app audio settings, with nothing to buy.",
		FixingTips: []string{
			"Check the output device selected in Sound settings",
			"Check the audio settings inside the app (Zoom/Teams)",
			"Unmute and raise the volume in the system mixer",
			"Update the audio driver in Device Manager",
		},
		Related: []string{},
	},
	{
		ID:         "USB Hub",
		Category:   CategoryOther,
		Definition: "A USB hub expands one USB port into several, optionally with its own power supply for demanding devices.",
		WhyUseful:  "A powered hub connects more devices than the computer has ports for, without unplugging things constantly.",
		FixingTips: []string{
			"Count how many devices need to be connected at once",
			"Prefer a powered hub for external drives and charging",
			"Check the USB version of the computer's ports before buying",
		},
		Related: []string{},
	},
}
