package models

import "time"

// Bureau holds the flat credit-bureau attribute set keyed by SSN. Everything
// except id/ssn is optional; numeric columns are pointers so absent values
// persist as NULL.
type Bureau struct {
	ID                           string `gorm:"primaryKey" json:"id"`
	SSN                          string `gorm:"uniqueIndex;column:ssn" json:"ssn"`
	DTI                          string `gorm:"column:dti" json:"dti"`
	Delinq2Yrs                   *int   `gorm:"column:delinq_2yrs" json:"delinq_2yrs"`
	EarliestCrLine               string `gorm:"column:earliest_cr_line" json:"earliest_cr_line"`
	FicoRangeLow                 *int   `gorm:"column:fico_range_low" json:"fico_range_low"`
	FicoRangeHigh                *int   `gorm:"column:fico_range_high" json:"fico_range_high"`
	InqLast6Mths                 *int   `gorm:"column:inq_last_6mths" json:"inq_last_6mths"`
	MthsSinceLastDelinq          *int   `gorm:"column:mths_since_last_delinq" json:"mths_since_last_delinq"`
	MthsSinceLastRecord          *int   `gorm:"column:mths_since_last_record" json:"mths_since_last_record"`
	OpenAcc                      *int   `gorm:"column:open_acc" json:"open_acc"`
	PubRec                       *int   `gorm:"column:pub_rec" json:"pub_rec"`
	RevolBal                     string `gorm:"column:revol_bal" json:"revol_bal"`
	RevolUtil                    string `gorm:"column:revol_util" json:"revol_util"`
	TotalAcc                     *int   `gorm:"column:total_acc" json:"total_acc"`
	InitialListStatus            string `gorm:"column:initial_list_status" json:"initial_list_status"`
	OutPrncp                     string `gorm:"column:out_prncp" json:"out_prncp"`
	OutPrncpInv                  string `gorm:"column:out_prncp_inv" json:"out_prncp_inv"`
	TotalPymnt                   string `gorm:"column:total_pymnt" json:"total_pymnt"`
	TotalPymntInv                string `gorm:"column:total_pymnt_inv" json:"total_pymnt_inv"`
	TotalRecPrncp                string `gorm:"column:total_rec_prncp" json:"total_rec_prncp"`
	TotalRecInt                  string `gorm:"column:total_rec_int" json:"total_rec_int"`
	TotalRecLateFee              string `gorm:"column:total_rec_late_fee" json:"total_rec_late_fee"`
	Recoveries                   string `gorm:"column:recoveries" json:"recoveries"`
	CollectionRecoveryFee        string `gorm:"column:collection_recovery_fee" json:"collection_recovery_fee"`
	LastPymntD                   string `gorm:"column:last_pymnt_d" json:"last_pymnt_d"`
	LastPymntAmnt                string `gorm:"column:last_pymnt_amnt" json:"last_pymnt_amnt"`
	NextPymntD                   string `gorm:"column:next_pymnt_d" json:"next_pymnt_d"`
	LastCreditPullD              string `gorm:"column:last_credit_pull_d" json:"last_credit_pull_d"`
	LastFicoRangeHigh            *int   `gorm:"column:last_fico_range_high" json:"last_fico_range_high"`
	LastFicoRangeLow             *int   `gorm:"column:last_fico_range_low" json:"last_fico_range_low"`
	Collections12MthsExMed       *int   `gorm:"column:collections_12_mths_ex_med" json:"collections_12_mths_ex_med"`
	MthsSinceLastMajorDerog      *int   `gorm:"column:mths_since_last_major_derog" json:"mths_since_last_major_derog"`
	PolicyCode                   string `gorm:"column:policy_code" json:"policy_code"`
	ApplicationType              string `gorm:"column:application_type" json:"application_type"`
	AnnualIncJoint               string `gorm:"column:annual_inc_joint" json:"annual_inc_joint"`
	DTIJoint                     string `gorm:"column:dti_joint" json:"dti_joint"`
	VerificationStatusJoint      string `gorm:"column:verification_status_joint" json:"verification_status_joint"`
	AccNowDelinq                 *int   `gorm:"column:acc_now_delinq" json:"acc_now_delinq"`
	TotCollAmt                   string `gorm:"column:tot_coll_amt" json:"tot_coll_amt"`
	TotCurBal                    string `gorm:"column:tot_cur_bal" json:"tot_cur_bal"`
	OpenAcc6M                    *int   `gorm:"column:open_acc_6m" json:"open_acc_6m"`
	OpenActIl                    *int   `gorm:"column:open_act_il" json:"open_act_il"`
	OpenIl12M                    *int   `gorm:"column:open_il_12m" json:"open_il_12m"`
	OpenIl24M                    *int   `gorm:"column:open_il_24m" json:"open_il_24m"`
	MthsSinceRcntIl              *int   `gorm:"column:mths_since_rcnt_il" json:"mths_since_rcnt_il"`
	TotalBalIl                   string `gorm:"column:total_bal_il" json:"total_bal_il"`
	IlUtil                       string `gorm:"column:il_util" json:"il_util"`
	OpenRv12M                    *int   `gorm:"column:open_rv_12m" json:"open_rv_12m"`
	OpenRv24M                    *int   `gorm:"column:open_rv_24m" json:"open_rv_24m"`
	MaxBalBc                     string `gorm:"column:max_bal_bc" json:"max_bal_bc"`
	AllUtil                      string `gorm:"column:all_util" json:"all_util"`
	TotalRevHiLim                string `gorm:"column:total_rev_hi_lim" json:"total_rev_hi_lim"`
	InqFi                        *int   `gorm:"column:inq_fi" json:"inq_fi"`
	TotalCuTl                    *int   `gorm:"column:total_cu_tl" json:"total_cu_tl"`
	InqLast12M                   *int   `gorm:"column:inq_last_12m" json:"inq_last_12m"`
	AccOpenPast24Mths            *int   `gorm:"column:acc_open_past_24mths" json:"acc_open_past_24mths"`
	AvgCurBal                    string `gorm:"column:avg_cur_bal" json:"avg_cur_bal"`
	BcOpenToBuy                  string `gorm:"column:bc_open_to_buy" json:"bc_open_to_buy"`
	BcUtil                       string `gorm:"column:bc_util" json:"bc_util"`
	ChargeoffWithin12Mths        *int   `gorm:"column:chargeoff_within_12_mths" json:"chargeoff_within_12_mths"`
	DelinqAmnt                   string `gorm:"column:delinq_amnt" json:"delinq_amnt"`
	MoSinOldIlAcct               *int   `gorm:"column:mo_sin_old_il_acct" json:"mo_sin_old_il_acct"`
	MoSinOldRevTlOp              *int   `gorm:"column:mo_sin_old_rev_tl_op" json:"mo_sin_old_rev_tl_op"`
	MoSinRcntRevTlOp             *int   `gorm:"column:mo_sin_rcnt_rev_tl_op" json:"mo_sin_rcnt_rev_tl_op"`
	MoSinRcntTl                  *int   `gorm:"column:mo_sin_rcnt_tl" json:"mo_sin_rcnt_tl"`
	MortAcc                      *int   `gorm:"column:mort_acc" json:"mort_acc"`
	MthsSinceRecentBc            *int   `gorm:"column:mths_since_recent_bc" json:"mths_since_recent_bc"`
	MthsSinceRecentBcDlq         *int   `gorm:"column:mths_since_recent_bc_dlq" json:"mths_since_recent_bc_dlq"`
	MthsSinceRecentInq           *int   `gorm:"column:mths_since_recent_inq" json:"mths_since_recent_inq"`
	MthsSinceRecentRevolDelinq   *int   `gorm:"column:mths_since_recent_revol_delinq" json:"mths_since_recent_revol_delinq"`
	NumAcctsEver120Pd            *int   `gorm:"column:num_accts_ever_120_pd" json:"num_accts_ever_120_pd"`
	NumActvBcTl                  *int   `gorm:"column:num_actv_bc_tl" json:"num_actv_bc_tl"`
	NumActvRevTl                 *int   `gorm:"column:num_actv_rev_tl" json:"num_actv_rev_tl"`
	NumBcSats                    *int   `gorm:"column:num_bc_sats" json:"num_bc_sats"`
	NumBcTl                      *int   `gorm:"column:num_bc_tl" json:"num_bc_tl"`
	NumIlTl                      *int   `gorm:"column:num_il_tl" json:"num_il_tl"`
	NumOpRevTl                   *int   `gorm:"column:num_op_rev_tl" json:"num_op_rev_tl"`
	NumRevAccts                  *int   `gorm:"column:num_rev_accts" json:"num_rev_accts"`
	NumRevTlBalGt0               *int   `gorm:"column:num_rev_tl_bal_gt_0" json:"num_rev_tl_bal_gt_0"`
	NumSats                      *int   `gorm:"column:num_sats" json:"num_sats"`
	NumTl120Dpd2M                *int   `gorm:"column:num_tl_120dpd_2m" json:"num_tl_120dpd_2m"`
	NumTl30Dpd                   *int   `gorm:"column:num_tl_30dpd" json:"num_tl_30dpd"`
	NumTl90GDpd24M               *int   `gorm:"column:num_tl_90g_dpd_24m" json:"num_tl_90g_dpd_24m"`
	NumTlOpPast12M               *int   `gorm:"column:num_tl_op_past_12m" json:"num_tl_op_past_12m"`
	PctTlNvrDlq                  string `gorm:"column:pct_tl_nvr_dlq" json:"pct_tl_nvr_dlq"`
	PercentBcGt75                string `gorm:"column:percent_bc_gt_75" json:"percent_bc_gt_75"`
	PubRecBankruptcies           *int   `gorm:"column:pub_rec_bankruptcies" json:"pub_rec_bankruptcies"`
	TaxLiens                     *int   `gorm:"column:tax_liens" json:"tax_liens"`
	TotHiCredLim                 string `gorm:"column:tot_hi_cred_lim" json:"tot_hi_cred_lim"`
	TotalBalExMort               string `gorm:"column:total_bal_ex_mort" json:"total_bal_ex_mort"`
	TotalBcLimit                 string `gorm:"column:total_bc_limit" json:"total_bc_limit"`
	TotalIlHighCreditLimit       string `gorm:"column:total_il_high_credit_limit" json:"total_il_high_credit_limit"`
	RevolBalJoint                string `gorm:"column:revol_bal_joint" json:"revol_bal_joint"`
	SecAppFicoRangeLow           *int   `gorm:"column:sec_app_fico_range_low" json:"sec_app_fico_range_low"`
	SecAppFicoRangeHigh          *int   `gorm:"column:sec_app_fico_range_high" json:"sec_app_fico_range_high"`
	SecAppEarliestCrLine         string `gorm:"column:sec_app_earliest_cr_line" json:"sec_app_earliest_cr_line"`
	SecAppInqLast6Mths           *int   `gorm:"column:sec_app_inq_last_6mths" json:"sec_app_inq_last_6mths"`
	SecAppMortAcc                *int   `gorm:"column:sec_app_mort_acc" json:"sec_app_mort_acc"`
	SecAppOpenAcc                *int   `gorm:"column:sec_app_open_acc" json:"sec_app_open_acc"`
	SecAppRevolUtil              string `gorm:"column:sec_app_revol_util" json:"sec_app_revol_util"`
	SecAppOpenActIl              *int   `gorm:"column:sec_app_open_act_il" json:"sec_app_open_act_il"`
	SecAppNumRevAccts            *int   `gorm:"column:sec_app_num_rev_accts" json:"sec_app_num_rev_accts"`
	SecAppChargeoffWithin12Mths  *int   `gorm:"column:sec_app_chargeoff_within_12_mths" json:"sec_app_chargeoff_within_12_mths"`
	SecAppCollections12MthsExMed *int   `gorm:"column:sec_app_collections_12_mths_ex_med" json:"sec_app_collections_12_mths_ex_med"`

	HardshipFlag                           string `gorm:"column:hardship_flag" json:"hardship_flag"`
	HardshipType                           string `gorm:"column:hardship_type" json:"hardship_type"`
	HardshipReason                         string `gorm:"column:hardship_reason" json:"hardship_reason"`
	HardshipStatus                         string `gorm:"column:hardship_status" json:"hardship_status"`
	DeferralTerm                           *int   `gorm:"column:deferral_term" json:"deferral_term"`
	HardshipAmount                         string `gorm:"column:hardship_amount" json:"hardship_amount"`
	HardshipStartDate                      string `gorm:"column:hardship_start_date" json:"hardship_start_date"`
	HardshipEndDate                        string `gorm:"column:hardship_end_date" json:"hardship_end_date"`
	PaymentPlanStartDate                   string `gorm:"column:payment_plan_start_date" json:"payment_plan_start_date"`
	HardshipLength                         *int   `gorm:"column:hardship_length" json:"hardship_length"`
	HardshipDpd                            *int   `gorm:"column:hardship_dpd" json:"hardship_dpd"`
	HardshipLoanStatus                     string `gorm:"column:hardship_loan_status" json:"hardship_loan_status"`
	OrigProjectedAdditionalAccruedInterest string `gorm:"column:orig_projected_additional_accrued_interest" json:"orig_projected_additional_accrued_interest"`
	HardshipPayoffBalanceAmount            string `gorm:"column:hardship_payoff_balance_amount" json:"hardship_payoff_balance_amount"`
	HardshipLastPaymentAmount              string `gorm:"column:hardship_last_payment_amount" json:"hardship_last_payment_amount"`
	DebtSettlementFlag                     string `gorm:"column:debt_settlement_flag" json:"debt_settlement_flag"`

	CreatedAt time.Time `json:"created_at"`
}

func (Bureau) TableName() string {
	return "bureau"
}
