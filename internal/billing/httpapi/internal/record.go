package internal

import shareddomain "hubble-workspace/internal/shared_kernel/domain"

type RecordPageResponse struct {
	Records      []shareddomain.Record `json:"records"`
	TotalRecords int                   `json:"totalRecords"`
}

func ToRecordPageResponse(result shareddomain.PageResult) RecordPageResponse {
	records := result.Records
	if records == nil {
		records = []shareddomain.Record{}
	}
	return RecordPageResponse{Records: records, TotalRecords: result.TotalRecords}
}
