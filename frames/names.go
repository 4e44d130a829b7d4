// SPDX-License-Identifier: EPL-2.0

package frames

var titles = map[string]string{
	"AENC": "Audio Encryption",
	"APIC": "Attached Picture",
	"ASPI": "Audio Seek Point Index",
	"COMM": "Comments",
	"COMR": "Commercial Info",
	"ENCR": "Encryption Method",
	"EQU2": "Equalization",
	"EQUA": "Equalization",
	"ETCO": "Event Timing",
	"GEOB": "Encapsulated Object",
	"GRID": "Group Identification",
	"IPLS": "Involved People",
	"LINK": "Linked Info",
	"MCDI": "Music CD",
	"MLLT": "MPEG Lookup Table",
	"OWNE": "Ownership",
	"PRIV": "Private",
	"PCNT": "Play Counter",
	"POPM": "Popularimeter",
	"POSS": "Position Sync",
	"RBUF": "Recommended Buffer Size",
	"RVA2": "Relative Volume Adjust",
	"RVAD": "Relative Volume Adjust",
	"RVRB": "Reverb",
	"SEEK": "Seek",
	"SIGN": "Signature",
	"SYLT": "Synchronized Lyrics",
	"SYTC": "Synchronized Tempo",
	"TALB": "Album Title",
	"TBPM": "BPM",
	"TCOM": "Composer",
	"TCON": "Content Type",
	"TCOP": "Copyright",
	"TDAT": "Date",
	"TDEN": "Encoding Time",
	"TDLY": "Playlist Delay",
	"TDOR": "Original Release Time",
	"TDRC": "Recording Time",
	"TDRL": "Release Time",
	"TDTG": "Tagging Time",
	"TENC": "Encoded By",
	"TEXT": "Lyricist",
	"TFLT": "File Type",
	"TIME": "Time",
	"TIPL": "Involved People",
	"TIT1": "Content Group",
	"TIT2": "Title",
	"TIT3": "Subtitle",
	"TKEY": "Initial Key",
	"TLAN": "Language",
	"TLEN": "Length",
	"TMCL": "Musician Credits List",
	"TMED": "Media Type",
	"TMOO": "Mood",
	"TOAL": "Original Album Title",
	"TOFN": "Original Filename",
	"TOLY": "Original Lyricist",
	"TOPE": "Original Artist",
	"TORY": "Original Release Year",
	"TOWN": "File Owner",
	"TPE1": "Lead Performer",
	"TPE2": "Accompaniment",
	"TPE3": "Conductor",
	"TPE4": "Interpreted By",
	"TPOS": "Part of a Set",
	"TPRO": "Produced Notice",
	"TPUB": "Publisher",
	"TRCK": "Track Number",
	"TRDA": "Recording Dates",
	"TRSN": "Radio Station Name",
	"TRSO": "Radio Station Owner",
	"TSIZ": "Size",
	"TSOA": "Album Sort Order",
	"TSOP": "Performer Sort Order",
	"TSOT": "Title Sort Order",
	"TSO2": "Album Artist Sort Order",
	"TSOC": "Composer Sort Order",
	"TSRC": "ISRC Code",
	"TSSE": "Encoding Settings",
	"TSST": "Set Subtitle",
	"TXXX": "Text Info",
	"TYER": "Year",
	"UFID": "Unique File ID",
	"USER": "Terms of Use",
	"USLT": "Lyrics",
	"WCOM": "Commercial Webpage",
	"WCOP": "Copyright Webpage",
	"WOAF": "Audio Webpage",
	"WOAR": "Artist Webpage",
	"WOAS": "Audio Source Webpage",
	"WORS": "Radio Station Webpage",
	"WPAY": "Payment Webpage",
	"WPUB": "Publisher Webpage",
	"WXXX": "Webpage",
}

// v22IDs maps ID3v2.2 frame IDs to their ID3v2.3 equivalents.
var v22IDs = map[string]string{
	"BUF": "RBUF",
	"CNT": "PCNT",
	"COM": "COMM",
	"CRA": "AENC",
	"EQU": "EQUA",
	"ETC": "ETCO",
	"GEO": "GEOB",
	"IPL": "IPLS",
	"LNK": "LINK",
	"MCI": "MCDI",
	"MLL": "MLLT",
	"PIC": "APIC",
	"POP": "POPM",
	"REV": "RVRB",
	"RVA": "RVAD",
	"SLT": "SYLT",
	"STC": "SYTC",
	"TAL": "TALB",
	"TBP": "TBPM",
	"TCM": "TCOM",
	"TCO": "TCON",
	"TCR": "TCOP",
	"TDA": "TDAT",
	"TDY": "TDLY",
	"TEN": "TENC",
	"TFT": "TFLT",
	"TIM": "TIME",
	"TKE": "TKEY",
	"TLA": "TLAN",
	"TLE": "TLEN",
	"TMT": "TMED",
	"TOA": "TOPE",
	"TOF": "TOFN",
	"TOL": "TOLY",
	"TOR": "TORY",
	"TOT": "TOAL",
	"TP1": "TPE1",
	"TP2": "TPE2",
	"TP3": "TPE3",
	"TP4": "TPE4",
	"TPA": "TPOS",
	"TPB": "TPUB",
	"TRC": "TSRC",
	"TRD": "TRDA",
	"TRK": "TRCK",
	"TSI": "TSIZ",
	"TSS": "TSSE",
	"TT1": "TIT1",
	"TT2": "TIT2",
	"TT3": "TIT3",
	"TXT": "TEXT",
	"TXX": "TXXX",
	"TYE": "TYER",
	"UFI": "UFID",
	"ULT": "USLT",
	"WAF": "WOAF",
	"WAR": "WOAR",
	"WAS": "WOAS",
	"WCM": "WCOM",
	"WCP": "WCOP",
	"WPB": "WPUB",
	"WXX": "WXXX",
}

// Canonical returns the four-character ID for an ID3v2.2 frame ID. Other
// IDs are returned unchanged.
func Canonical(id string) string {
	if len(id) == 3 {
		if c, ok := v22IDs[id]; ok {
			return c
		}
	}

	return id
}

// Title returns a human-readable title for a frame ID, or the ID itself
// when it is not known.
func Title(id string) string {
	if t, ok := titles[Canonical(id)]; ok {
		return t
	}

	return id
}
