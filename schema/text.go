package schema

// Slot numbers of the shared settings-text pool introduced with layout
// 8.0.0.1. All former fixed-capacity strings collapsed into one
// NUL-delimited pool at 0x017; each logical string is addressed by slot.
const (
	SetOTAURL = iota
	SetMQTTPrefix1
	SetMQTTPrefix2
	SetMQTTPrefix3
	SetStaSSID1
	SetStaSSID2
	SetStaPwd1
	SetStaPwd2
	SetHostname
	SetSyslogHost
	SetWebPwd
	SetCORS
	SetMQTTHost
	SetMQTTClient
	SetMQTTUser
	SetMQTTPwd
	SetMQTTFullTopic
	SetMQTTTopic
	SetMQTTButtonTopic
	SetMQTTSwitchTopic
	SetMQTTGrpTopic
	SetStateTxt1
	SetStateTxt2
	SetStateTxt3
	SetStateTxt4
	SetNTPServer1
	SetNTPServer2
	SetNTPServer3
	SetMem1
	SetMem2
	SetMem3
	SetMem4
	SetMem5
	SetMem6
	SetMem7
	SetMem8
	SetMem9
	SetMem10
	SetMem11
	SetMem12
	SetMem13
	SetMem14
	SetMem15
	SetMem16
	SetFriendlyname1
	SetFriendlyname2
	SetFriendlyname3
	SetFriendlyname4
	SetFriendlyname5
	SetFriendlyname6
	SetFriendlyname7
	SetFriendlyname8
	SetButton1
	SetButton2
	SetButton3
	SetButton4
	SetButton5
	SetButton6
	SetButton7
	SetButton8
	SetButton9
	SetButton10
	SetButton11
	SetButton12
	SetButton13
	SetButton14
	SetButton15
	SetButton16
	SetMQTTGrpTopic2
	SetMQTTGrpTopic3
	SetMQTTGrpTopic4
	SetTemplateName
	SetDevGroupName1
	SetDevGroupName2
	SetDevGroupName3
	SetDevGroupName4
	SetMax
)

// TextPoolOff and TextPoolSize locate the shared pool inside 8.x images.
const (
	TextPoolOff  = 0x017
	TextPoolSize = 699
)
