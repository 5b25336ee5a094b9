package classifier

// defaultRules is the built-in rule table, evaluated top-down. Order is
// significant: exact NTSTATUS codes come before generic substring families,
// and the most symptomatic substrings within a family come before catch-alls
// like kernelbase. Patterns must be lowercase.
var defaultRules = []Rule{
	// NTSTATUS exception codes.
	{
		Pattern:     "0xc0000005",
		Category:    "ACCESS_VIOLATION",
		Explanation: "The game tried to read or write memory it does not own. This is the most common crash type: usually a game bug, corrupted game files, or unstable overclocked RAM. Verify the game files and try stock memory clocks.",
	},
	{
		Pattern:     "0xc0000374",
		Category:    "HEAP_CORRUPTION",
		Explanation: "The game's memory heap was corrupted before the crash. Often caused by buggy overlays or mods injecting into the process. Try disabling overlays (Discord, GeForce Experience, RivaTuner) and mods.",
	},
	{
		Pattern:     "0xc00000fd",
		Category:    "STACK_OVERFLOW",
		Explanation: "The game ran out of call-stack space, typically from runaway recursion. Almost always a game bug; check for a patch or report it to the developer.",
	},
	{
		Pattern:     "0xc0000409",
		Category:    "STACK_BUFFER_OVERRUN",
		Explanation: "A security check detected a buffer overrun on the stack and terminated the game. Usually a game bug, sometimes triggered by incompatible injected software.",
	},
	{
		Pattern:     "0xc000001d",
		Category:    "ILLEGAL_INSTRUCTION",
		Explanation: "The CPU was asked to execute an instruction it does not support. Check the game's minimum CPU requirements (e.g. AVX support) or remove aggressive CPU overclocks.",
	},
	{
		Pattern:     "0xc0000142",
		Category:    "DLL_INIT_FAILURE",
		Explanation: "A DLL failed to initialize during startup. Commonly a broken Visual C++ redistributable or a blocked dependency; reinstall the game's redistributables.",
	},
	{
		Pattern:     "0x80000003",
		Category:    "BREAKPOINT",
		Explanation: "The game hit a debug breakpoint outside a debugger. Often an assertion left in the build or interference from injected tools.",
	},

	// GPU and display drivers.
	{
		Pattern:     "nvwgf",
		Category:    "GPU_DRIVER",
		Explanation: "The crash occurred inside the NVIDIA Direct3D driver. Update (or clean-reinstall) the GPU driver and remove any GPU overclock.",
	},
	{
		Pattern:     "nvlddmkm",
		Category:    "GPU_DRIVER",
		Explanation: "The NVIDIA kernel-mode driver reset or crashed. Usually driver instability or an unstable GPU overclock.",
	},
	{
		Pattern:     "atidxx",
		Category:    "GPU_DRIVER",
		Explanation: "The crash occurred inside the AMD Direct3D driver. Update the GPU driver and remove any GPU overclock.",
	},
	{
		Pattern:     "amdvlk",
		Category:    "GPU_DRIVER",
		Explanation: "The crash occurred inside the AMD Vulkan driver. Update the GPU driver; if the game offers another renderer, try it.",
	},
	{
		Pattern:     "d3d11",
		Category:    "DIRECT3D",
		Explanation: "The crash points at the Direct3D 11 runtime. Update GPU drivers; if the game offers DX12/Vulkan modes, try switching renderer.",
	},
	{
		Pattern:     "dxgi",
		Category:    "DXGI",
		Explanation: "The crash points at the DXGI presentation layer. Often overlay software hooking the swap chain; disable overlays and update GPU drivers.",
	},

	// Game engines.
	{
		Pattern:     "unityplayer",
		Category:    "UNITY_ENGINE",
		Explanation: "The crash is inside the Unity engine runtime. Verify game files; if it persists, the game itself likely needs a patch.",
	},
	{
		Pattern:     "unity",
		Category:    "UNITY_ENGINE",
		Explanation: "The crash involves the Unity engine. Verify game files and check the game's crash log folder for details.",
	},
	{
		Pattern:     "unreal",
		Category:    "UNREAL_ENGINE",
		Explanation: "The crash involves the Unreal engine. Try deleting the game's shader cache and verifying game files.",
	},
	{
		Pattern:     "ue4",
		Category:    "UNREAL_ENGINE",
		Explanation: "An Unreal Engine 4 module crashed. Try deleting the game's shader cache and verifying game files.",
	},
	{
		Pattern:     "ue5",
		Category:    "UNREAL_ENGINE",
		Explanation: "An Unreal Engine 5 module crashed. Try deleting the game's shader cache and verifying game files.",
	},
	{
		Pattern:     "cryengine",
		Category:    "CRYENGINE",
		Explanation: "The crash involves CryEngine. Verify game files and update GPU drivers.",
	},

	// Anti-cheat.
	{
		Pattern:     "easyanticheat",
		Category:    "ANTI_CHEAT",
		Explanation: "Easy Anti-Cheat was involved in the crash. Repair the EAC service from the game's install folder and avoid running other injecting software.",
	},
	{
		Pattern:     "battleye",
		Category:    "ANTI_CHEAT",
		Explanation: "BattlEye was involved in the crash. Reinstall the BattlEye service and close overlay or monitoring tools before launching.",
	},
	{
		Pattern:     "vanguard",
		Category:    "ANTI_CHEAT",
		Explanation: "Riot Vanguard was involved in the crash. Reinstall Vanguard and reboot before launching.",
	},

	// DRM.
	{
		Pattern:     "denuvo",
		Category:    "DRM",
		Explanation: "The Denuvo DRM layer was involved in the crash. This can follow hardware changes; restart the game, and if it persists, reinstall.",
	},
	{
		Pattern:     "steam_api",
		Category:    "DRM",
		Explanation: "The Steam API layer was involved in the crash. Verify game files through Steam and make sure the Steam client is up to date.",
	},

	// Audio middleware.
	{
		Pattern:     "xaudio",
		Category:    "AUDIO",
		Explanation: "The XAudio subsystem crashed. Update audio drivers and disable audio enhancement software.",
	},
	{
		Pattern:     "fmod",
		Category:    "AUDIO",
		Explanation: "The FMOD audio middleware crashed. Update audio drivers; try a different audio output device.",
	},
	{
		Pattern:     "wwise",
		Category:    "AUDIO",
		Explanation: "The Wwise audio middleware crashed. Update audio drivers; try a different audio output device.",
	},

	// Networking.
	{
		Pattern:     "winsock",
		Category:    "NETWORK",
		Explanation: "A Windows networking component was involved. Reset the network stack (netsh winsock reset) and check firewall or VPN software.",
	},
	{
		Pattern:     "0x80072",
		Category:    "NETWORK",
		Explanation: "A Windows networking error code appears in the crash. Check connectivity, firewall, and VPN software.",
	},

	// Runtimes. kernelbase is a frequent but unspecific faulting module, so
	// it sits at the very bottom of the table.
	{
		Pattern:     "clr.dll",
		Category:    "DOTNET_RUNTIME",
		Explanation: "The .NET runtime crashed. Repair the .NET installation the game depends on.",
	},
	{
		Pattern:     "msvcr",
		Category:    "VCPP_RUNTIME",
		Explanation: "A Visual C++ runtime library crashed. Reinstall the Visual C++ redistributables shipped with the game.",
	},
	{
		Pattern:     "vcruntime",
		Category:    "VCPP_RUNTIME",
		Explanation: "A Visual C++ runtime library crashed. Reinstall the Visual C++ redistributables shipped with the game.",
	},
	{
		Pattern:     "kernelbase",
		Category:    "UNHANDLED_EXCEPTION",
		Explanation: "The crash surfaced in kernelbase.dll, which usually means an unhandled exception raised elsewhere. Check the other entries of this report for a more specific module.",
	},
}
