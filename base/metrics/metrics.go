package metrics

const (
	DriveTicksH = "The total number of control loop ticks executed"
	DriveTicksN = "steerservice_drive_ticks"

	DriveComputeErrsH = "The total number of inference passes that failed"
	DriveComputeErrsN = "steerservice_drive_compute_errs"

	DriveCorrH = "The current normalized steering correction"
	DriveCorrN = "steerservice_drive_corr"

	TruckReqsSentH = "The total number of state requests sent to the simulator"
	TruckReqsSentN = "steerservice_truck_reqs_sent"

	TruckStatesReceivedH = "The total number of state replies received from the simulator"
	TruckStatesReceivedN = "steerservice_truck_states_received"

	TruckCmdsSentH = "The total number of steering commands sent to the simulator"
	TruckCmdsSentN = "steerservice_truck_cmds_sent"

	TruckParseErrsH = "The total number of state replies that failed to parse"
	TruckParseErrsN = "steerservice_truck_parse_errs"
)
