// Package command matches chat messages against a configured table of
// commands and produces replies, optionally rendered as images.
//
// Two command kinds exist. Static commands map a name to a fixed reply.
// Time commands pick their reply from whichever configured time window
// contains the current clock time, filling a reply template with the
// window's fields; windows may cross midnight. Either kind can carry
// image options, in which case the matched reply text is rendered onto
// a template image instead of being sent as plain text.
//
// The configuration is JSON:
//
//	{
//	  "static_commands": [
//	    {"name": "menu", "reply": "Today: soup", "image_options": {...}}
//	  ],
//	  "time_commands": [
//	    {
//	      "command_name": "office",
//	      "reply_format": "{who} is on duty until {until}",
//	      "fallback_reply": "Nobody is in right now.",
//	      "time_periods": [
//	        {"start_time": "09:00", "end_time": "18:00", "who": "Ana", "until": "18:00"}
//	      ]
//	    }
//	  ]
//	}
package command
